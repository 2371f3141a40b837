package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/api/response"
	apppoints "github.com/xiangzhu626/jifen/src/internal/application/points"
	"go.uber.org/zap"
)

// PointsHandler 積分帳本、排行榜與統計
type PointsHandler struct {
	balance      apppoints.GetPointsBalanceUseCase
	credit       apppoints.CreditPointsUseCase
	debit        apppoints.DebitPointsUseCase
	transactions apppoints.ListTransactionsUseCase
	ranking      apppoints.GetRankingUseCase
	search       apppoints.SearchByPlanetIDUseCase
	statistics   apppoints.GetStatisticsUseCase
	logger       *zap.Logger
}

// PointsUseCases PointsHandler 依賴的 Use Case 集合
type PointsUseCases struct {
	Balance      apppoints.GetPointsBalanceUseCase
	Credit       apppoints.CreditPointsUseCase
	Debit        apppoints.DebitPointsUseCase
	Transactions apppoints.ListTransactionsUseCase
	Ranking      apppoints.GetRankingUseCase
	Search       apppoints.SearchByPlanetIDUseCase
	Statistics   apppoints.GetStatisticsUseCase
}

func NewPointsHandler(uc PointsUseCases, logger *zap.Logger) *PointsHandler {
	return &PointsHandler{
		balance:      uc.Balance,
		credit:       uc.Credit,
		debit:        uc.Debit,
		transactions: uc.Transactions,
		ranking:      uc.Ranking,
		search:       uc.Search,
		statistics:   uc.Statistics,
		logger:       logger,
	}
}

type accountJSON struct {
	ID        int64  `json:"id"`
	MemberID  int64  `json:"member_id"`
	Nickname  string `json:"nickname"`
	Points    int    `json:"points"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toAccountJSON(a *apppoints.AccountResult) accountJSON {
	return accountJSON{
		ID:        a.AccountID,
		MemberID:  a.MemberID,
		Nickname:  a.Nickname,
		Points:    a.Points,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
}

type transactionJSON struct {
	ID             int64  `json:"id"`
	MemberID       int64  `json:"member_id"`
	MemberNickname string `json:"member_nickname"`
	Points         int    `json:"points"`
	Type           string `json:"type"`
	Description    string `json:"description"`
	CreatedAt      string `json:"created_at"`
}

type rankingJSON struct {
	ID       int64   `json:"id"`
	Nickname string  `json:"nickname"`
	PlanetID *string `json:"planetId"`
	Points   int     `json:"points"`
}

type standingJSON struct {
	rankingJSON
	Rank int64 `json:"rank"`
}

type statisticsJSON struct {
	TotalMembers  int64   `json:"totalMembers"`
	TotalPoints   int64   `json:"totalPoints"`
	AveragePoints float64 `json:"averagePoints"`
	CreditedToday int64   `json:"creditedToday"`
	DebitedToday  int64   `json:"debitedToday"`
}

func toRankingJSON(e apppoints.RankingEntryResult) rankingJSON {
	return rankingJSON{
		ID:       e.MemberID,
		Nickname: e.Nickname,
		PlanetID: optionalString(e.PlanetID),
		Points:   e.Points,
	}
}

// adjustPointsRequest memberId 可為數字或字串
type adjustPointsRequest struct {
	MemberID    flexibleID `json:"memberId"`
	Points      int        `json:"points"`
	Description string     `json:"description"`
}

// Balance GET /api/points/:memberId
func (h *PointsHandler) Balance(c *gin.Context) {
	result, err := h.balance.Execute(apppoints.GetPointsBalanceQuery{MemberID: c.Param("memberId")})
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, toAccountJSON(result))
}

// Add POST /api/points/add
func (h *PointsHandler) Add(c *gin.Context) {
	h.adjust(c, h.credit, "积分增加成功")
}

// Deduct POST /api/points/deduct
func (h *PointsHandler) Deduct(c *gin.Context) {
	h.adjust(c, h.debit, "积分扣减成功")
}

type adjuster interface {
	Execute(cmd apppoints.AdjustPointsCommand) (*apppoints.AccountResult, error)
}

func (h *PointsHandler) adjust(c *gin.Context, uc adjuster, message string) {
	var req adjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, BadRequestMessage)
		return
	}

	result, err := uc.Execute(apppoints.AdjustPointsCommand{
		MemberID:    string(req.MemberID),
		Points:      req.Points,
		Description: req.Description,
	})
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}

	response.OKWithMessage(c, http.StatusOK, toAccountJSON(result), message)
}

// Transactions GET /api/points/transactions[/:memberId]?page&limit&startDate&endDate
func (h *PointsHandler) Transactions(c *gin.Context) {
	page, err := queryInt(c, "page")
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}

	result, err := h.transactions.Execute(apppoints.ListTransactionsQuery{
		MemberID:  c.Param("memberId"),
		Page:      page,
		PageSize:  limit,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	})
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}

	items := make([]transactionJSON, 0, len(result.Items))
	for _, tx := range result.Items {
		items = append(items, transactionJSON{
			ID:             tx.ID,
			MemberID:       tx.MemberID,
			MemberNickname: tx.MemberNickname,
			Points:         tx.Points,
			Type:           tx.Type,
			Description:    tx.Description,
			CreatedAt:      formatTime(tx.CreatedAt),
		})
	}
	response.OK(c, gin.H{
		"transactions": items,
		"pagination": paginationJSON{
			Total: result.Total,
			Page:  result.Page,
			Limit: result.PageSize,
		},
	})
}

// Ranking GET /api/points/ranking?limit
func (h *PointsHandler) Ranking(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}

	entries, err := h.ranking.Execute(limit)
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}

	out := make([]rankingJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, toRankingJSON(e))
	}
	response.OK(c, out)
}

// Search GET /api/points/search?planetId
func (h *PointsHandler) Search(c *gin.Context) {
	standing, err := h.search.Execute(c.Query("planetId"))
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, standingJSON{
		rankingJSON: toRankingJSON(standing.RankingEntryResult),
		Rank:        standing.Rank,
	})
}

// Statistics GET /api/points/statistics
func (h *PointsHandler) Statistics(c *gin.Context) {
	stats, err := h.statistics.Execute()
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, statisticsJSON{
		TotalMembers:  stats.TotalMembers,
		TotalPoints:   stats.TotalPoints,
		AveragePoints: stats.AveragePoints.InexactFloat64(),
		CreditedToday: stats.CreditedToday,
		DebitedToday:  stats.DebitedToday,
	})
}
