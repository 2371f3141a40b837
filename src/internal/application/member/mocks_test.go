package member

import (
	"github.com/stretchr/testify/mock"
	"github.com/xiangzhu626/jifen/src/internal/domain/member"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// ===========================
// Mocks
// ===========================

type MockPointsAccountRepository struct {
	mock.Mock
}

func (m *MockPointsAccountRepository) Save(ctx shared.TransactionContext, account *points.PointsAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockPointsAccountRepository) FindByMemberID(ctx shared.TransactionContext, memberID points.MemberID) (*points.PointsAccount, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*points.PointsAccount), args.Error(1)
}

func (m *MockPointsAccountRepository) Update(ctx shared.TransactionContext, account *points.PointsAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockPointsAccountRepository) DeleteByMemberID(ctx shared.TransactionContext, memberID points.MemberID) error {
	return m.Called(ctx, memberID).Error(0)
}

type MockPointsTransactionRepository struct {
	mock.Mock
}

func (m *MockPointsTransactionRepository) Append(ctx shared.TransactionContext, tx *points.PointsTransaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPointsTransactionRepository) List(ctx shared.TransactionContext, query points.TransactionQuery) ([]points.TransactionView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]points.TransactionView), args.Error(1)
}

func (m *MockPointsTransactionRepository) Count(ctx shared.TransactionContext, query points.TransactionQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPointsTransactionRepository) DeleteByMemberID(ctx shared.TransactionContext, memberID points.MemberID) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Save(ctx shared.TransactionContext, mem *member.Member) error {
	return m.Called(ctx, mem).Error(0)
}

func (m *MockMemberRepository) Update(ctx shared.TransactionContext, mem *member.Member) error {
	return m.Called(ctx, mem).Error(0)
}

func (m *MockMemberRepository) Delete(ctx shared.TransactionContext, id member.MemberID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMemberRepository) FindByMemberID(ctx shared.TransactionContext, id member.MemberID) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

type MockMemberQueryRepository struct {
	mock.Mock
}

func (m *MockMemberQueryRepository) GetSummary(ctx shared.TransactionContext, id member.MemberID) (*member.MemberSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.MemberSummary), args.Error(1)
}

func (m *MockMemberQueryRepository) List(ctx shared.TransactionContext, criteria member.ListCriteria) (shared.Page[member.MemberSummary], error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).(shared.Page[member.MemberSummary]), args.Error(1)
}

func (m *MockMemberQueryRepository) Count(ctx shared.TransactionContext) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionManager 直接以 nil context 執行
type MockTransactionManager struct {
	InTransactionCallCount int
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(nil)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	return m.Called(event).Error(0)
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	return m.Called(events).Error(0)
}
