package member

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// UpdateMemberCommand 修改會員資料指令
//
// PlanetID 為空字串時清除星球 ID。
type UpdateMemberCommand struct {
	MemberID string
	Nickname string
	PlanetID string
}

// UpdateMemberUseCase 修改會員暱稱 / 星球 ID（不影響積分）
//
// 錯誤：
// - ErrMemberNotFound
// - ErrPlanetIDAlreadyTaken（星球 ID 已被其他會員使用）
type UpdateMemberUseCase interface {
	Execute(cmd UpdateMemberCommand) (*MemberResult, error)
}

// UpdateMemberUseCaseImpl 修改會員實作
type UpdateMemberUseCaseImpl struct {
	memberRepo member.MemberRepository
	queryRepo  member.MemberQueryRepository
	txManager  shared.TransactionManager
}

// NewUpdateMemberUseCase 創建 UpdateMemberUseCase 實例
func NewUpdateMemberUseCase(
	memberRepo member.MemberRepository,
	queryRepo member.MemberQueryRepository,
	txManager shared.TransactionManager,
) UpdateMemberUseCase {
	return &UpdateMemberUseCaseImpl{
		memberRepo: memberRepo,
		queryRepo:  queryRepo,
		txManager:  txManager,
	}
}

// Execute 執行修改
func (uc *UpdateMemberUseCaseImpl) Execute(cmd UpdateMemberCommand) (*MemberResult, error) {
	memberID, err := member.MemberIDFromString(cmd.MemberID)
	if err != nil {
		return nil, err
	}
	nickname, err := member.NewNickname(cmd.Nickname)
	if err != nil {
		return nil, err
	}
	planetID, err := member.NewPlanetID(cmd.PlanetID)
	if err != nil {
		return nil, err
	}

	var summary *member.MemberSummary
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		m, err := uc.memberRepo.FindByMemberID(ctx, memberID)
		if err != nil {
			return err
		}

		m.Rename(nickname, planetID)
		if err := uc.memberRepo.Update(ctx, m); err != nil {
			return err
		}

		summary, err = uc.queryRepo.GetSummary(ctx, memberID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return newMemberResult(summary), nil
}
