package member

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"go.uber.org/zap"
)

// DeleteMemberCommand 刪除會員指令
type DeleteMemberCommand struct {
	MemberID string
}

// DeleteMemberUseCase 刪除會員，連同積分帳戶與所有交易記錄
//
// 錯誤：ErrMemberNotFound
type DeleteMemberUseCase interface {
	Execute(cmd DeleteMemberCommand) error
}

// DeleteMemberUseCaseImpl 刪除會員實作
type DeleteMemberUseCaseImpl struct {
	memberRepo      member.MemberRepository
	accountRepo     points.PointsAccountRepository
	transactionRepo points.PointsTransactionRepository
	txManager       shared.TransactionManager
	logger          *zap.Logger
}

// NewDeleteMemberUseCase 創建 DeleteMemberUseCase 實例
func NewDeleteMemberUseCase(
	memberRepo member.MemberRepository,
	accountRepo points.PointsAccountRepository,
	transactionRepo points.PointsTransactionRepository,
	txManager shared.TransactionManager,
	logger *zap.Logger,
) DeleteMemberUseCase {
	return &DeleteMemberUseCaseImpl{
		memberRepo:      memberRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute 執行刪除
//
// 刪除順序：交易記錄 → 積分帳戶 → 會員，全部在同一事務中。
func (uc *DeleteMemberUseCaseImpl) Execute(cmd DeleteMemberCommand) error {
	memberID, err := member.MemberIDFromString(cmd.MemberID)
	if err != nil {
		return err
	}

	var removed int64
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if _, err := uc.memberRepo.FindByMemberID(ctx, memberID); err != nil {
			return err
		}

		removed, err = uc.transactionRepo.DeleteByMemberID(ctx, memberID)
		if err != nil {
			return err
		}
		if err := uc.accountRepo.DeleteByMemberID(ctx, memberID); err != nil {
			return err
		}
		return uc.memberRepo.Delete(ctx, memberID)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("member deleted",
		zap.Int64("member_id", memberID.Int64()),
		zap.Int64("transactions_removed", removed),
	)
	return nil
}
