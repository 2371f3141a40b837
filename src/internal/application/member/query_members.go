package member

import (
	"strings"

	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// ===========================
// GetMember / ListMembers
// ===========================

// GetMemberQuery 查詢單一會員
type GetMemberQuery struct {
	MemberID string
}

// GetMemberUseCase 查詢會員及其積分餘額
type GetMemberUseCase interface {
	Execute(query GetMemberQuery) (*MemberResult, error)
}

// GetMemberUseCaseImpl 查詢會員實作
type GetMemberUseCaseImpl struct {
	queryRepo member.MemberQueryRepository
}

// NewGetMemberUseCase 創建 GetMemberUseCase 實例
func NewGetMemberUseCase(queryRepo member.MemberQueryRepository) GetMemberUseCase {
	return &GetMemberUseCaseImpl{queryRepo: queryRepo}
}

// Execute 查詢會員
func (uc *GetMemberUseCaseImpl) Execute(query GetMemberQuery) (*MemberResult, error) {
	memberID, err := member.MemberIDFromString(query.MemberID)
	if err != nil {
		return nil, err
	}

	summary, err := uc.queryRepo.GetSummary(nil, memberID)
	if err != nil {
		return nil, err
	}
	return newMemberResult(summary), nil
}

// ListMembersQuery 會員列表查詢（Search 比對暱稱或星球 ID）
type ListMembersQuery struct {
	Page     int
	PageSize int
	Search   string
}

// ListMembersUseCase 會員分頁列表
type ListMembersUseCase interface {
	Execute(query ListMembersQuery) (*MemberPage, error)
}

// ListMembersUseCaseImpl 會員列表實作
type ListMembersUseCaseImpl struct {
	queryRepo member.MemberQueryRepository
}

// NewListMembersUseCase 創建 ListMembersUseCase 實例
func NewListMembersUseCase(queryRepo member.MemberQueryRepository) ListMembersUseCase {
	return &ListMembersUseCaseImpl{queryRepo: queryRepo}
}

// Execute 查詢會員列表
func (uc *ListMembersUseCaseImpl) Execute(query ListMembersQuery) (*MemberPage, error) {
	pageReq, err := shared.NewPageRequest(query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	page, err := uc.queryRepo.List(nil, member.ListCriteria{
		Page:   pageReq,
		Search: strings.TrimSpace(query.Search),
	})
	if err != nil {
		return nil, err
	}

	items := make([]MemberResult, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *newMemberResult(&page.Items[i]))
	}

	return &MemberPage{
		Items:    items,
		Total:    page.Total,
		Page:     pageReq.Page(),
		PageSize: pageReq.PageSize(),
	}, nil
}
