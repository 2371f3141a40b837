package auth

import (
	"errors"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// ===========================
// Mocks
// ===========================

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Save(ctx shared.TransactionContext, a *admin.Admin) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAdminRepository) FindByID(ctx shared.TransactionContext, id admin.AdminID) (*admin.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindByUsername(ctx shared.TransactionContext, username string) (*admin.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

func (m *MockAdminRepository) UpdatePassword(ctx shared.TransactionContext, a *admin.Admin) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAdminRepository) Count(ctx shared.TransactionContext) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(a *admin.Admin) (string, time.Time, error) {
	args := m.Called(a)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) Parse(token string) (admin.Claims, error) {
	args := m.Called(token)
	return args.Get(0).(admin.Claims), args.Error(1)
}

// plainHasher 測試用雜湊：hash = "hashed:" + plain
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

type MockTransactionManager struct {
	InTransactionCallCount int
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(nil)
}

func testAdmin(id int64, username, password string) *admin.Admin {
	return admin.ReconstructAdmin(admin.AdminIDFromInt(id), username, "hashed:"+password, time.Now())
}
