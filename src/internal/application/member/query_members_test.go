package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// ===========================
// GetMember
// ===========================

func TestGetMemberUseCase(t *testing.T) {
	queries := new(MockMemberQueryRepository)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	queries.On("GetSummary", mock.Anything, member.MemberIDFromInt(5)).Return(&member.MemberSummary{
		ID:        member.MemberIDFromInt(5),
		Nickname:  "Alice",
		PlanetID:  "p1",
		Points:    80,
		CreatedAt: created,
		UpdatedAt: created,
	}, nil)
	queries.On("GetSummary", mock.Anything, member.MemberIDFromInt(6)).Return(nil, member.ErrMemberNotFound)
	useCase := NewGetMemberUseCase(queries)

	result, err := useCase.Execute(GetMemberQuery{MemberID: "5"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.ID)
	assert.Equal(t, 80, result.Points)
	assert.Equal(t, created, result.CreatedAt)

	_, err = useCase.Execute(GetMemberQuery{MemberID: "6"})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)

	_, err = useCase.Execute(GetMemberQuery{MemberID: "abc"})
	assert.ErrorIs(t, err, member.ErrInvalidMemberID)
}

// ===========================
// ListMembers
// ===========================

func TestListMembersUseCase(t *testing.T) {
	// Arrange
	queries := new(MockMemberQueryRepository)
	queries.On("List", mock.Anything, mock.MatchedBy(func(c member.ListCriteria) bool {
		return c.Search == "ali" && c.Page.Page() == 2 && c.Page.PageSize() == 5
	})).Return(shared.Page[member.MemberSummary]{
		Items: []member.MemberSummary{
			{ID: member.MemberIDFromInt(9), Nickname: "Alice"},
			{ID: member.MemberIDFromInt(3), Nickname: "Malik"},
		},
		Total: 7,
	}, nil)
	useCase := NewListMembersUseCase(queries)

	// Act
	page, err := useCase.Execute(ListMembersQuery{Page: 2, PageSize: 5, Search: "  ali "})

	// Assert
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(9), page.Items[0].ID)
	assert.Equal(t, int64(7), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.PageSize)
}

func TestListMembersUseCase_Defaults(t *testing.T) {
	queries := new(MockMemberQueryRepository)
	queries.On("List", mock.Anything, mock.MatchedBy(func(c member.ListCriteria) bool {
		return c.Search == "" && c.Page.Page() == shared.DefaultPage && c.Page.PageSize() == shared.DefaultPageSize
	})).Return(shared.Page[member.MemberSummary]{Items: []member.MemberSummary{}}, nil)

	page, err := NewListMembersUseCase(queries).Execute(ListMembersQuery{})

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestListMembersUseCase_InvalidPage(t *testing.T) {
	queries := new(MockMemberQueryRepository)

	_, err := NewListMembersUseCase(queries).Execute(ListMembersQuery{PageSize: -10})

	assert.ErrorIs(t, err, shared.ErrInvalidPagination)
	queries.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
