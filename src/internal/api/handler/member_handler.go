package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/api/response"
	appmember "github.com/xiangzhu626/jifen/src/internal/application/member"
	"go.uber.org/zap"
)

// ===========================
// MemberHandler 會員管理（需登入）
// ===========================

type MemberHandler struct {
	list   appmember.ListMembersUseCase
	get    appmember.GetMemberUseCase
	create appmember.CreateMemberUseCase
	update appmember.UpdateMemberUseCase
	delete appmember.DeleteMemberUseCase
	logger *zap.Logger
}

func NewMemberHandler(
	list appmember.ListMembersUseCase,
	get appmember.GetMemberUseCase,
	create appmember.CreateMemberUseCase,
	update appmember.UpdateMemberUseCase,
	del appmember.DeleteMemberUseCase,
	logger *zap.Logger,
) *MemberHandler {
	return &MemberHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: del,
		logger: logger,
	}
}

type memberJSON struct {
	ID        int64   `json:"id"`
	Nickname  string  `json:"nickname"`
	PlanetID  *string `json:"planetId"`
	Points    int     `json:"points"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func toMemberJSON(m *appmember.MemberResult) memberJSON {
	return memberJSON{
		ID:        m.ID,
		Nickname:  m.Nickname,
		PlanetID:  optionalString(m.PlanetID),
		Points:    m.Points,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

type createMemberRequest struct {
	Nickname      string `json:"nickname"`
	PlanetID      string `json:"planetId"`
	InitialPoints int    `json:"initialPoints"`
	Description   string `json:"description"`
}

type updateMemberRequest struct {
	Nickname string `json:"nickname"`
	PlanetID string `json:"planetId"`
}

// List GET /api/members?page&limit&search
func (h *MemberHandler) List(c *gin.Context) {
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

	result, err := h.list.Execute(appmember.ListMembersQuery{
		Page:     page,
		PageSize: limit,
		Search:   c.Query("search"),
	})
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}

	members := make([]memberJSON, 0, len(result.Items))
	for i := range result.Items {
		members = append(members, toMemberJSON(&result.Items[i]))
	}
	response.OK(c, gin.H{
		"members": members,
		"pagination": paginationJSON{
			Total: result.Total,
			Page:  result.Page,
			Limit: result.PageSize,
		},
	})
}

// Get GET /api/members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	result, err := h.get.Execute(appmember.GetMemberQuery{MemberID: c.Param("id")})
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{"member": toMemberJSON(result)})
}

// Create POST /api/members
func (h *MemberHandler) Create(c *gin.Context) {
	var req createMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, BadRequestMessage)
		return
	}

	result, err := h.create.Execute(appmember.CreateMemberCommand{
		Nickname:      req.Nickname,
		PlanetID:      req.PlanetID,
		InitialPoints: req.InitialPoints,
		Description:   req.Description,
	})
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}

	response.OKWithMessage(c, http.StatusCreated, gin.H{"member": toMemberJSON(result)}, "会员创建成功")
}

// Update PUT /api/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	var req updateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, BadRequestMessage)
		return
	}

	result, err := h.update.Execute(appmember.UpdateMemberCommand{
		MemberID: c.Param("id"),
		Nickname: req.Nickname,
		PlanetID: req.PlanetID,
	})
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}

	response.OKWithMessage(c, http.StatusOK, gin.H{"member": toMemberJSON(result)}, "会员信息更新成功")
}

// Delete DELETE /api/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(appmember.DeleteMemberCommand{MemberID: c.Param("id")}); err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}
	response.OKWithMessage(c, http.StatusOK, nil, "会员删除成功")
}
