package member

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"go.uber.org/zap"
)

// SampleMember 範例會員
type SampleMember struct {
	Nickname string
	PlanetID string
}

// DefaultSampleMembers 開發環境的範例會員（餘額為 0）
var DefaultSampleMembers = []SampleMember{
	{Nickname: "张三", PlanetID: "zhangsan123"},
	{Nickname: "李四", PlanetID: "lisi456"},
	{Nickname: "王五", PlanetID: "wangwu789"},
	{Nickname: "赵六", PlanetID: "zhaoliu000"},
	{Nickname: "钱七", PlanetID: "qianqi111"},
}

// SeedSampleMembersUseCase 沒有任何會員時寫入範例會員（可重複執行）
type SeedSampleMembersUseCase interface {
	Execute(samples []SampleMember) (int, error)
}

// SeedSampleMembersUseCaseImpl 範例會員寫入實作
type SeedSampleMembersUseCaseImpl struct {
	memberWriter
	queryRepo member.MemberQueryRepository
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewSeedSampleMembersUseCase 創建 SeedSampleMembersUseCase 實例
func NewSeedSampleMembersUseCase(
	queryRepo member.MemberQueryRepository,
	memberRepo member.MemberRepository,
	accountRepo points.PointsAccountRepository,
	transactionRepo points.PointsTransactionRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) SeedSampleMembersUseCase {
	return &SeedSampleMembersUseCaseImpl{
		memberWriter: memberWriter{
			memberRepo:      memberRepo,
			accountRepo:     accountRepo,
			transactionRepo: transactionRepo,
		},
		queryRepo: queryRepo,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute 寫入範例會員，返回新增的筆數
//
// 已經有會員時不做任何事。計數與所有寫入在同一個事務中，
// 任一筆失敗時全部回滾，返回 0。
func (uc *SeedSampleMembersUseCaseImpl) Execute(samples []SampleMember) (int, error) {
	inputs := make([]newMemberInput, 0, len(samples))
	for _, s := range samples {
		input, err := parseCreateMemberCommand(CreateMemberCommand{
			Nickname: s.Nickname,
			PlanetID: s.PlanetID,
		})
		if err != nil {
			return 0, err
		}
		inputs = append(inputs, input)
	}

	var events []shared.DomainEvent
	seeded := 0
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		count, err := uc.queryRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, input := range inputs {
			created, err := uc.create(ctx, input)
			if err != nil {
				return err
			}
			events = append(events, created.events...)
		}
		seeded = len(inputs)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if seeded == 0 {
		return 0, nil
	}

	publishAfterCommit(uc.publisher, uc.logger, events)
	uc.logger.Info("sample members seeded", zap.Int("count", seeded))
	return seeded, nil
}
