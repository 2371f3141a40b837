package member

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ===========================
// CreateMember Use Case
// ===========================

// CreateMemberCommand 建立會員指令（Input DTO）
//
// 使用原始類型，由 Use Case 轉換為 Value Object。
type CreateMemberCommand struct {
	Nickname      string
	PlanetID      string // 可為空
	InitialPoints int    // 0 表示不發放初始積分
	Description   string // 初始積分的交易描述，空字串使用預設值
}

// CreateMemberUseCase 建立會員 Use Case 接口
//
// 業務規則：
// 1. 暱稱必填
// 2. 星球 ID 設定時不可與其他會員重複（ErrPlanetIDAlreadyTaken）
// 3. 會員與積分帳戶同時建立
// 4. InitialPoints > 0 時記錄一筆 credit 交易
type CreateMemberUseCase interface {
	Execute(cmd CreateMemberCommand) (*MemberResult, error)
}

// CreateMemberUseCaseImpl 建立會員 Use Case 實作
type CreateMemberUseCaseImpl struct {
	memberWriter
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewCreateMemberUseCase 創建 CreateMemberUseCase 實例
func NewCreateMemberUseCase(
	memberRepo member.MemberRepository,
	accountRepo points.PointsAccountRepository,
	transactionRepo points.PointsTransactionRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) CreateMemberUseCase {
	return &CreateMemberUseCaseImpl{
		memberWriter: memberWriter{
			memberRepo:      memberRepo,
			accountRepo:     accountRepo,
			transactionRepo: transactionRepo,
		},
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute 執行建立會員
//
// 業務流程：
// 1. 驗證輸入並轉換為 Value Object
// 2. 在事務中執行：
//    a. 保存會員（星球 ID 重複時由唯一約束拒絕）
//    b. 建立積分帳戶，必要時先套用初始積分
//    c. 保存帳戶與初始交易記錄
// 3. 提交後發布領域事件
//
// 事務保證：任一步驟失敗，會員、帳戶、交易都不會留下。
func (uc *CreateMemberUseCaseImpl) Execute(cmd CreateMemberCommand) (*MemberResult, error) {
	// Step 1: 驗證輸入
	input, err := parseCreateMemberCommand(cmd)
	if err != nil {
		return nil, err
	}

	// Step 2: 在事務中執行
	var created *createdMember
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		created, err = uc.create(ctx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Step 3: 發布事件
	publishAfterCommit(uc.publisher, uc.logger, created.events)

	return created.result(), nil
}

// ===========================
// 共用：建立會員與積分帳戶
// ===========================

// newMemberInput 已驗證的建立會員輸入
type newMemberInput struct {
	nickname    member.Nickname
	planetID    member.PlanetID
	initial     points.PointsAmount
	description points.Description
}

func parseCreateMemberCommand(cmd CreateMemberCommand) (newMemberInput, error) {
	nickname, err := member.NewNickname(cmd.Nickname)
	if err != nil {
		return newMemberInput{}, err
	}
	planetID, err := member.NewPlanetID(cmd.PlanetID)
	if err != nil {
		return newMemberInput{}, err
	}
	initial, err := points.NewPointsAmount(cmd.InitialPoints)
	if err != nil {
		return newMemberInput{}, err
	}
	description, err := points.NewDescription(cmd.Description, points.InitialCreditDescription)
	if err != nil {
		return newMemberInput{}, err
	}
	return newMemberInput{
		nickname:    nickname,
		planetID:    planetID,
		initial:     initial,
		description: description,
	}, nil
}

// createdMember 事務內建立的會員、帳戶與待發布事件
type createdMember struct {
	member  *member.Member
	account *points.PointsAccount
	events  []shared.DomainEvent
}

func (c *createdMember) result() *MemberResult {
	return &MemberResult{
		ID:        c.member.MemberID().Int64(),
		Nickname:  c.member.Nickname().String(),
		PlanetID:  c.member.PlanetID().String(),
		Points:    c.account.Balance().Value(),
		CreatedAt: c.member.CreatedAt(),
		UpdatedAt: c.member.UpdatedAt(),
	}
}

// memberWriter 建立會員、帳戶與初始交易（必須在呼叫者的事務中執行）
type memberWriter struct {
	memberRepo      member.MemberRepository
	accountRepo     points.PointsAccountRepository
	transactionRepo points.PointsTransactionRepository
}

func (w memberWriter) create(ctx shared.TransactionContext, in newMemberInput) (*createdMember, error) {
	newMember, err := member.NewMember(in.nickname, in.planetID)
	if err != nil {
		return nil, err
	}
	if err := w.memberRepo.Save(ctx, newMember); err != nil {
		return nil, err
	}

	account, err := points.NewPointsAccount(newMember.MemberID())
	if err != nil {
		return nil, err
	}

	var seed *points.PointsTransaction
	if !in.initial.IsZero() {
		seed, err = account.Credit(in.initial, in.description)
		if err != nil {
			return nil, err
		}
	}

	if err := w.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}
	if seed != nil {
		if err := w.transactionRepo.Append(ctx, seed); err != nil {
			return nil, err
		}
	}

	return &createdMember{
		member:  newMember,
		account: account,
		events:  account.PullEvents(),
	}, nil
}

// publishAfterCommit 發布失敗只記錄警告，不影響已提交的結果
func publishAfterCommit(publisher shared.EventPublisher, logger *zap.Logger, events []shared.DomainEvent) {
	if len(events) == 0 {
		return
	}
	if err := publisher.PublishBatch(events); err != nil {
		logger.Warn("publish member events failed",
			zap.Int("events", len(events)),
			zap.Error(err),
		)
	}
}
