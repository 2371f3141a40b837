package persistence_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence/persistencetest"
	pointsrepo "github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence/points"
	"gorm.io/gorm"
)

// ===========================
// TransactionManager Integration Tests
// ===========================
//
// 這些測試驗證 TransactionManager 的核心保證：
// 1. 事務隔離：錯誤時回滾，成功時提交
// 2. Panic 處理：panic 時自動回滾
// 3. 多操作原子性：多個操作在同一事務中成功或失敗

func insertMember(t *testing.T, db *gorm.DB, nickname string) points.MemberID {
	t.Helper()
	model := &persistence.MemberModel{Nickname: nickname, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, db.Create(model).Error)
	return points.MemberIDFromInt(model.ID)
}

// TestRollbackOnError_DoesNotCommit 錯誤時回滾
func TestRollbackOnError_DoesNotCommit(t *testing.T) {
	// Arrange
	db := persistencetest.SetupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := pointsrepo.NewPointsAccountRepository(db)
	memberID := insertMember(t, db, "张三")

	// Act: 執行一個會失敗的事務
	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		account, _ := points.NewPointsAccount(memberID)
		require.NoError(t, repo.Save(ctx, account), "Save should succeed within transaction")

		return errors.New("simulated error - trigger rollback")
	})

	// Assert
	require.Error(t, err)
	assert.Equal(t, "simulated error - trigger rollback", err.Error())

	_, err = repo.FindByMemberID(nil, memberID)
	assert.ErrorIs(t, err, points.ErrAccountNotFound, "account should not exist after rollback")
}

// TestCommitOnSuccess_SavesData 成功時提交
func TestCommitOnSuccess_SavesData(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := pointsrepo.NewPointsAccountRepository(db)
	memberID := insertMember(t, db, "张三")

	var accountID points.AccountID
	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		account, _ := points.NewPointsAccount(memberID)
		if err := repo.Save(ctx, account); err != nil {
			return err
		}
		accountID = account.AccountID()
		return nil
	})

	require.NoError(t, err)
	account, err := repo.FindByMemberID(nil, memberID)
	require.NoError(t, err, "account should exist after commit")
	assert.Equal(t, accountID, account.AccountID())
}

// TestPanicRecovery_RollsBackAndRepanics panic 時回滾並重新拋出
func TestPanicRecovery_RollsBackAndRepanics(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := pointsrepo.NewPointsAccountRepository(db)
	memberID := insertMember(t, db, "张三")

	assert.Panics(t, func() {
		_ = txManager.InTransaction(func(ctx shared.TransactionContext) error {
			account, _ := points.NewPointsAccount(memberID)
			require.NoError(t, repo.Save(ctx, account))

			panic("simulated panic - should rollback")
		})
	}, "panic should be re-thrown")

	_, err := repo.FindByMemberID(nil, memberID)
	assert.ErrorIs(t, err, points.ErrAccountNotFound, "account should not exist after panic rollback")
}

// TestMultipleOperations_AtomicRollback 帳戶更新與交易記錄一起回滾
func TestMultipleOperations_AtomicRollback(t *testing.T) {
	// Arrange
	db := persistencetest.SetupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	accounts := pointsrepo.NewPointsAccountRepository(db)
	transactions := pointsrepo.NewPointsTransactionRepository(db)
	memberID := insertMember(t, db, "张三")
	account, _ := points.NewPointsAccount(memberID)
	require.NoError(t, accounts.Save(nil, account))

	// Act: 增加積分並寫入交易，之後失敗
	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		loaded, err := accounts.FindByMemberID(ctx, memberID)
		if err != nil {
			return err
		}
		amount, _ := points.NewPositivePointsAmount(50)
		desc, _ := points.NewDescription("", points.DefaultCreditDescription)
		tx, err := loaded.Credit(amount, desc)
		if err != nil {
			return err
		}
		if err := accounts.Update(ctx, loaded); err != nil {
			return err
		}
		if err := transactions.Append(ctx, tx); err != nil {
			return err
		}
		return errors.New("second operation failed")
	})

	// Assert
	require.Error(t, err)
	reloaded, err := accounts.FindByMemberID(nil, memberID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Balance().Value())

	page, _ := shared.NewPageRequest(1, 10)
	count, err := transactions.Count(nil, points.TransactionQuery{Page: page})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// TestRepository_NilContext_AutoCommitMode nil context 的 auto-commit 讀取
func TestRepository_NilContext_AutoCommitMode(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	repo := pointsrepo.NewPointsAccountRepository(db)
	txManager := persistence.NewGORMTransactionManager(db)
	memberID := insertMember(t, db, "张三")
	account, _ := points.NewPointsAccount(memberID)

	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return repo.Save(ctx, account)
	})
	require.NoError(t, err, "setup: save account should succeed")

	found, err := repo.FindByMemberID(nil, memberID)

	require.NoError(t, err, "FindByMemberID with nil context should succeed")
	assert.Equal(t, account.AccountID(), found.AccountID())
}

// TestDBFrom_FallsBackForForeignContext 非 GORM 的上下文使用預設連線
func TestDBFrom_FallsBackForForeignContext(t *testing.T) {
	db := persistencetest.SetupTestDB(t)

	type otherContext struct{}

	assert.Same(t, db, persistence.DBFrom(nil, db))
	assert.Same(t, db, persistence.DBFrom(otherContext{}, db))
}

// TestReset_DropsData Reset 清空資料後重建資料表
func TestReset_DropsData(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	insertMember(t, db, "张三")

	require.NoError(t, persistence.Reset(db))

	var count int64
	require.NoError(t, db.Model(&persistence.MemberModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestIsUniqueConstraintError(t *testing.T) {
	assert.True(t, persistence.IsUniqueConstraintError(gorm.ErrDuplicatedKey))
	assert.True(t, persistence.IsUniqueConstraintError(errors.New("UNIQUE constraint failed: members.planet_id")))
	assert.True(t, persistence.IsUniqueConstraintError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_members_planet_id"`)))
	assert.False(t, persistence.IsUniqueConstraintError(errors.New("connection refused")))
	assert.False(t, persistence.IsUniqueConstraintError(nil))
}
