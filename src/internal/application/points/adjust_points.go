package points

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ===========================
// CreditPoints / DebitPoints Use Cases
// ===========================

// AdjustPointsCommand 增加 / 扣減積分指令
//
// Description 為空時使用預設描述（增加积分 / 扣减积分）。
type AdjustPointsCommand struct {
	MemberID    string
	Points      int
	Description string
}

// CreditPointsUseCase 增加積分
//
// 錯誤：
// - points.ErrInvalidMemberID / ErrNonPositivePoints（InvalidArgument）
// - points.ErrAccountNotFound（NotFound）
type CreditPointsUseCase interface {
	Execute(cmd AdjustPointsCommand) (*AccountResult, error)
}

// DebitPointsUseCase 扣減積分
//
// 額外錯誤：points.ErrInsufficientPoints（餘額不足，狀態不變）
type DebitPointsUseCase interface {
	Execute(cmd AdjustPointsCommand) (*AccountResult, error)
}

// ledgerDeps 增加與扣減共用的依賴
type ledgerDeps struct {
	accountRepo     points.PointsAccountRepository
	transactionRepo points.PointsTransactionRepository
	memberRepo      member.MemberRepository
	txManager       shared.TransactionManager
	publisher       shared.EventPublisher
	logger          *zap.Logger
}

// CreditPointsUseCaseImpl 增加積分實作
type CreditPointsUseCaseImpl struct {
	ledgerDeps
}

// DebitPointsUseCaseImpl 扣減積分實作
type DebitPointsUseCaseImpl struct {
	ledgerDeps
}

// NewCreditPointsUseCase 創建增加積分 Use Case
func NewCreditPointsUseCase(
	accountRepo points.PointsAccountRepository,
	transactionRepo points.PointsTransactionRepository,
	memberRepo member.MemberRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) CreditPointsUseCase {
	return &CreditPointsUseCaseImpl{ledgerDeps{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		memberRepo:      memberRepo,
		txManager:       txManager,
		publisher:       publisher,
		logger:          logger,
	}}
}

// NewDebitPointsUseCase 創建扣減積分 Use Case
func NewDebitPointsUseCase(
	accountRepo points.PointsAccountRepository,
	transactionRepo points.PointsTransactionRepository,
	memberRepo member.MemberRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) DebitPointsUseCase {
	return &DebitPointsUseCaseImpl{ledgerDeps{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		memberRepo:      memberRepo,
		txManager:       txManager,
		publisher:       publisher,
		logger:          logger,
	}}
}

// Execute 增加積分
func (uc *CreditPointsUseCaseImpl) Execute(cmd AdjustPointsCommand) (*AccountResult, error) {
	return uc.apply(cmd, points.TransactionTypeCredit)
}

// Execute 扣減積分
func (uc *DebitPointsUseCaseImpl) Execute(cmd AdjustPointsCommand) (*AccountResult, error) {
	return uc.apply(cmd, points.TransactionTypeDebit)
}

// apply 執行一筆帳本異動
//
// 業務流程：
// 1. 驗證輸入（會員 ID、積分 > 0、描述）
// 2. 在事務中執行：
//    a. 載入會員與積分帳戶
//    b. 由聚合執行 Credit / Debit（餘額不足時失敗）
//    c. 條件式更新餘額（並發扣減時由資料庫判斷）
//    d. 寫入交易記錄
//    e. 重新讀取更新後的帳戶
// 3. 提交後發布領域事件
func (d *ledgerDeps) apply(cmd AdjustPointsCommand, txType points.TransactionType) (*AccountResult, error) {
	// Step 1: 驗證輸入
	memberID, err := points.MemberIDFromString(cmd.MemberID)
	if err != nil {
		return nil, err
	}
	amount, err := points.NewPositivePointsAmount(cmd.Points)
	if err != nil {
		return nil, err
	}
	description, err := points.NewDescription(cmd.Description, points.DefaultDescriptionFor(txType))
	if err != nil {
		return nil, err
	}

	// Step 2: 在事務中執行
	var (
		result *AccountResult
		events []shared.DomainEvent
	)
	err = d.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		m, err := d.memberRepo.FindByMemberID(ctx, memberID)
		if err != nil {
			return err
		}

		account, err := d.accountRepo.FindByMemberID(ctx, memberID)
		if err != nil {
			return err
		}

		var tx *points.PointsTransaction
		if txType == points.TransactionTypeDebit {
			tx, err = account.Debit(amount, description)
		} else {
			tx, err = account.Credit(amount, description)
		}
		if err != nil {
			return err
		}

		if err := d.accountRepo.Update(ctx, account); err != nil {
			return err
		}
		if err := d.transactionRepo.Append(ctx, tx); err != nil {
			return err
		}
		events = account.PullEvents()

		updated, err := d.accountRepo.FindByMemberID(ctx, memberID)
		if err != nil {
			return err
		}
		result = newAccountResult(updated, m.Nickname().String())
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Step 3: 發布事件（失敗不影響已提交的結果）
	if err := d.publisher.PublishBatch(events); err != nil {
		d.logger.Warn("publish ledger events failed",
			zap.String("member_id", memberID.String()),
			zap.String("type", txType.String()),
			zap.Error(err),
		)
	}

	return result, nil
}
