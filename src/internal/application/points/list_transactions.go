package points

import (
	"strings"
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"go.uber.org/zap"
)

// AllMembersToken 路徑參數為此值時查詢所有會員的交易
const AllMembersToken = "all"

// ListTransactionsQuery 交易記錄查詢
//
// MemberID 為空或 "all" 時為跨會員動態；StartDate / EndDate 為 YYYY-MM-DD，可只給一邊。
type ListTransactionsQuery struct {
	MemberID  string
	Page      int
	PageSize  int
	StartDate string
	EndDate   string
}

// ListTransactionsUseCase 交易記錄分頁查詢
type ListTransactionsUseCase interface {
	Execute(query ListTransactionsQuery) (*TransactionPage, error)
}

// ListTransactionsUseCaseImpl 交易記錄查詢實作
type ListTransactionsUseCaseImpl struct {
	transactionRepo points.PointsTransactionRepository
	memberRepo      member.MemberRepository
	logger          *zap.Logger
	location        *time.Location
}

// NewListTransactionsUseCase 創建 Use Case 實例（日期以伺服器本地時區解析）
func NewListTransactionsUseCase(
	transactionRepo points.PointsTransactionRepository,
	memberRepo member.MemberRepository,
	logger *zap.Logger,
) ListTransactionsUseCase {
	return &ListTransactionsUseCaseImpl{
		transactionRepo: transactionRepo,
		memberRepo:      memberRepo,
		logger:          logger,
		location:        time.Local,
	}
}

// Execute 查詢交易記錄
//
// 指定會員時，會員不存在一律返回 ErrMemberNotFound。
// 總數查詢失敗時退回本頁筆數，並記錄警告。
func (uc *ListTransactionsUseCaseImpl) Execute(query ListTransactionsQuery) (*TransactionPage, error) {
	pageReq, err := shared.NewPageRequest(query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	dateRange, err := points.NewDateRange(query.StartDate, query.EndDate, uc.location)
	if err != nil {
		return nil, err
	}

	q := points.TransactionQuery{Page: pageReq, Range: dateRange}

	if id := strings.TrimSpace(query.MemberID); id != "" && id != AllMembersToken {
		memberID, err := member.MemberIDFromString(id)
		if err != nil {
			return nil, err
		}
		if _, err := uc.memberRepo.FindByMemberID(nil, memberID); err != nil {
			return nil, err
		}
		q.MemberID = memberID
	}

	views, err := uc.transactionRepo.List(nil, q)
	if err != nil {
		return nil, err
	}

	total, err := uc.transactionRepo.Count(nil, q)
	if err != nil {
		uc.logger.Warn("count transactions failed, falling back to page size",
			zap.Error(err),
			zap.Int("items", len(views)),
		)
		total = int64(len(views))
	}

	items := make([]TransactionResult, 0, len(views))
	for _, v := range views {
		items = append(items, TransactionResult{
			ID:             v.ID.Int64(),
			MemberID:       v.MemberID.Int64(),
			MemberNickname: v.MemberNickname,
			Type:           v.Type.String(),
			Points:         v.Points,
			Description:    v.Description,
			CreatedAt:      v.CreatedAt,
		})
	}

	return &TransactionPage{
		Items:    items,
		Total:    total,
		Page:     pageReq.Page(),
		PageSize: pageReq.PageSize(),
	}, nil
}
