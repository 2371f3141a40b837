package member

import (
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/member"
)

// MemberResult 會員資料（含積分餘額）
//
// PlanetID 為空字串表示未設定。
type MemberResult struct {
	ID        int64
	Nickname  string
	PlanetID  string
	Points    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberPage 會員分頁結果
type MemberPage struct {
	Items    []MemberResult
	Total    int64
	Page     int
	PageSize int
}

func newMemberResult(s *member.MemberSummary) *MemberResult {
	return &MemberResult{
		ID:        s.ID.Int64(),
		Nickname:  s.Nickname,
		PlanetID:  s.PlanetID,
		Points:    s.Points,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
