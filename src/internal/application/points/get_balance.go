package points

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
)

// GetPointsBalanceQuery 查詢積分餘額的查詢
type GetPointsBalanceQuery struct {
	MemberID string
}

// GetPointsBalanceUseCase 查詢積分餘額 Use Case
type GetPointsBalanceUseCase interface {
	Execute(query GetPointsBalanceQuery) (*AccountResult, error)
}

// GetPointsBalanceUseCaseImpl 查詢積分餘額實作
type GetPointsBalanceUseCaseImpl struct {
	accountRepo points.PointsAccountRepository
	memberRepo  member.MemberRepository
}

// NewGetPointsBalanceUseCase 創建 Use Case 實例
func NewGetPointsBalanceUseCase(
	accountRepo points.PointsAccountRepository,
	memberRepo member.MemberRepository,
) GetPointsBalanceUseCase {
	return &GetPointsBalanceUseCaseImpl{
		accountRepo: accountRepo,
		memberRepo:  memberRepo,
	}
}

// Execute 執行查詢積分餘額
//
// 錯誤處理：
// - ErrInvalidMemberID: MemberID 格式無效
// - ErrAccountNotFound: 帳戶不存在
func (uc *GetPointsBalanceUseCaseImpl) Execute(query GetPointsBalanceQuery) (*AccountResult, error) {
	// 1. 驗證並轉換 MemberID
	memberID, err := points.MemberIDFromString(query.MemberID)
	if err != nil {
		return nil, err
	}

	// 2. 查詢積分帳戶
	account, err := uc.accountRepo.FindByMemberID(nil, memberID)
	if err != nil {
		return nil, err
	}

	// 3. 帶出會員暱稱
	m, err := uc.memberRepo.FindByMemberID(nil, memberID)
	if err != nil {
		return nil, err
	}

	return newAccountResult(account, m.Nickname().String()), nil
}
