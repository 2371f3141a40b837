package points

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence/persistencetest"
	"gorm.io/gorm"
)

// ===========================
// PointsAccountRepository Integration Tests
// ===========================

// createTestMemberRow 直接寫入會員列，返回會員 ID
func createTestMemberRow(t *testing.T, db *gorm.DB, nickname string, planetID *string) points.MemberID {
	t.Helper()
	model := &persistence.MemberModel{
		Nickname:  nickname,
		PlanetID:  planetID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(model).Error)
	return points.MemberIDFromInt(model.ID)
}

// createTestAccount 建立並保存積分帳戶，balance > 0 時以一筆 credit 設定初始積分
func createTestAccount(t *testing.T, repo points.PointsAccountRepository, memberID points.MemberID, balance int) *points.PointsAccount {
	t.Helper()
	account, err := points.NewPointsAccount(memberID)
	require.NoError(t, err)
	if balance > 0 {
		amount, _ := points.NewPositivePointsAmount(balance)
		desc, _ := points.NewDescription("", points.InitialCreditDescription)
		_, err = account.Credit(amount, desc)
		require.NoError(t, err)
	}
	require.NoError(t, repo.Save(nil, account))
	return account
}

func strPtr(s string) *string {
	return &s
}

// Test 1: Save 新帳戶並寫入初始積分
func TestPointsAccountRepository_Save_NewAccount_Success(t *testing.T) {
	// Arrange
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsAccountRepository(db)
	memberID := createTestMemberRow(t, db, "张三", nil)

	// Act
	account := createTestAccount(t, repo, memberID, 100)

	// Assert
	assert.False(t, account.AccountID().IsEmpty())
	assert.Equal(t, 0, account.BalanceDelta(), "saved balance is persisted")

	var model persistence.PointsAccountModel
	require.NoError(t, db.First(&model, account.AccountID().Int64()).Error)
	assert.Equal(t, memberID.Int64(), model.MemberID)
	assert.Equal(t, 100, model.Points)
}

// Test 2: 同一會員不能有兩個帳戶
func TestPointsAccountRepository_Save_DuplicateMemberID_ReturnsError(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsAccountRepository(db)
	memberID := createTestMemberRow(t, db, "张三", nil)
	createTestAccount(t, repo, memberID, 0)

	again, _ := points.NewPointsAccount(memberID)
	err := repo.Save(nil, again)

	assert.ErrorIs(t, err, points.ErrAccountAlreadyExists)
}

// Test 3: FindByMemberID
func TestPointsAccountRepository_FindByMemberID(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsAccountRepository(db)
	memberID := createTestMemberRow(t, db, "张三", nil)
	saved := createTestAccount(t, repo, memberID, 42)

	found, err := repo.FindByMemberID(nil, memberID)

	require.NoError(t, err)
	assert.Equal(t, saved.AccountID(), found.AccountID())
	assert.Equal(t, 42, found.Balance().Value())

	_, err = repo.FindByMemberID(nil, points.MemberIDFromInt(999))
	assert.ErrorIs(t, err, points.ErrAccountNotFound)
}

// Test 4: Update 套用差額
func TestPointsAccountRepository_Update_AppliesDelta(t *testing.T) {
	// Arrange
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsAccountRepository(db)
	memberID := createTestMemberRow(t, db, "张三", nil)
	createTestAccount(t, repo, memberID, 100)

	account, err := repo.FindByMemberID(nil, memberID)
	require.NoError(t, err)
	amount, _ := points.NewPositivePointsAmount(30)
	desc, _ := points.NewDescription("", points.DefaultDebitDescription)
	_, err = account.Debit(amount, desc)
	require.NoError(t, err)

	// Act
	err = repo.Update(nil, account)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, account.BalanceDelta())
	reloaded, _ := repo.FindByMemberID(nil, memberID)
	assert.Equal(t, 70, reloaded.Balance().Value())
}

// Test 5: 兩個過期副本同時扣減，第二個因餘額不足失敗，不會遺失更新
func TestPointsAccountRepository_Update_StaleCopies_NoLostUpdate(t *testing.T) {
	// Arrange
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsAccountRepository(db)
	memberID := createTestMemberRow(t, db, "张三", nil)
	createTestAccount(t, repo, memberID, 100)

	first, _ := repo.FindByMemberID(nil, memberID)
	second, _ := repo.FindByMemberID(nil, memberID)
	amount, _ := points.NewPositivePointsAmount(60)
	desc, _ := points.NewDescription("", points.DefaultDebitDescription)
	_, err := first.Debit(amount, desc)
	require.NoError(t, err)
	_, err = second.Debit(amount, desc)
	require.NoError(t, err, "each copy still sees 100 in memory")

	// Act
	require.NoError(t, repo.Update(nil, first))
	err = repo.Update(nil, second)

	// Assert
	assert.ErrorIs(t, err, points.ErrInsufficientPoints)
	reloaded, _ := repo.FindByMemberID(nil, memberID)
	assert.Equal(t, 40, reloaded.Balance().Value())
}

// Test 6: 兩個過期副本同時增加，兩筆都生效
func TestPointsAccountRepository_Update_ConcurrentCredits_BothApplied(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsAccountRepository(db)
	memberID := createTestMemberRow(t, db, "张三", nil)
	createTestAccount(t, repo, memberID, 10)

	first, _ := repo.FindByMemberID(nil, memberID)
	second, _ := repo.FindByMemberID(nil, memberID)
	amount, _ := points.NewPositivePointsAmount(5)
	desc, _ := points.NewDescription("", points.DefaultCreditDescription)
	_, _ = first.Credit(amount, desc)
	_, _ = second.Credit(amount, desc)

	require.NoError(t, repo.Update(nil, first))
	require.NoError(t, repo.Update(nil, second))

	reloaded, _ := repo.FindByMemberID(nil, memberID)
	assert.Equal(t, 20, reloaded.Balance().Value())
}

// Test 7: Update 不存在的帳戶
func TestPointsAccountRepository_Update_NonExistentAccount_ReturnsError(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsAccountRepository(db)
	ghost, _ := points.ReconstructPointsAccount(points.AccountIDFromInt(77), points.MemberIDFromInt(77), 10, time.Now(), time.Now())
	amount, _ := points.NewPositivePointsAmount(5)
	desc, _ := points.NewDescription("", points.DefaultCreditDescription)
	_, _ = ghost.Credit(amount, desc)

	err := repo.Update(nil, ghost)

	assert.ErrorIs(t, err, points.ErrAccountNotFound)
}

// Test 8: DeleteByMemberID
func TestPointsAccountRepository_DeleteByMemberID(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsAccountRepository(db)
	memberID := createTestMemberRow(t, db, "张三", nil)
	createTestAccount(t, repo, memberID, 10)

	require.NoError(t, repo.DeleteByMemberID(nil, memberID))

	_, err := repo.FindByMemberID(nil, memberID)
	assert.ErrorIs(t, err, points.ErrAccountNotFound)
	assert.NoError(t, repo.DeleteByMemberID(nil, memberID), "deleting twice is a no-op")
}

// ===========================
// PointsTransactionRepository Integration Tests
// ===========================

func appendTx(t *testing.T, repo points.PointsTransactionRepository, memberID points.MemberID, txType points.TransactionType, amount int, createdAt time.Time) {
	t.Helper()
	tx, err := points.ReconstructPointsTransaction(points.TransactionID{}, memberID, txType, amount, "", createdAt)
	require.NoError(t, err)
	require.NoError(t, repo.Append(nil, tx))
	assert.False(t, tx.TransactionID().IsEmpty())
}

func firstPage(t *testing.T) shared.PageRequest {
	t.Helper()
	p, err := shared.NewPageRequest(1, 10)
	require.NoError(t, err)
	return p
}

// Test 9: List 由新到舊並帶出會員暱稱
func TestPointsTransactionRepository_List_NewestFirstWithNickname(t *testing.T) {
	// Arrange
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsTransactionRepository(db)
	alice := createTestMemberRow(t, db, "Alice", nil)
	bob := createTestMemberRow(t, db, "Bob", nil)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)
	appendTx(t, repo, alice, points.TransactionTypeCredit, 100, base)
	appendTx(t, repo, bob, points.TransactionTypeCredit, 50, base.Add(time.Hour))
	appendTx(t, repo, alice, points.TransactionTypeDebit, 30, base.Add(2*time.Hour))

	// Act
	all, err := repo.List(nil, points.TransactionQuery{Page: firstPage(t)})

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, points.TransactionTypeDebit, all[0].Type)
	assert.Equal(t, "Alice", all[0].MemberNickname)
	assert.Equal(t, "Bob", all[1].MemberNickname)
	assert.Equal(t, 100, all[2].Points)

	onlyAlice, err := repo.List(nil, points.TransactionQuery{MemberID: alice, Page: firstPage(t)})
	require.NoError(t, err)
	assert.Len(t, onlyAlice, 2)

	count, err := repo.Count(nil, points.TransactionQuery{MemberID: alice, Page: firstPage(t)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// Test 10: 同一時間戳記時 ID 大者在前
func TestPointsTransactionRepository_List_SameTimestamp_OrdersByID(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsTransactionRepository(db)
	memberID := createTestMemberRow(t, db, "Alice", nil)
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)
	appendTx(t, repo, memberID, points.TransactionTypeCredit, 1, at)
	appendTx(t, repo, memberID, points.TransactionTypeCredit, 2, at)

	views, err := repo.List(nil, points.TransactionQuery{Page: firstPage(t)})

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 2, views[0].Points)
	assert.True(t, views[0].ID.Int64() > views[1].ID.Int64())
}

// Test 11: 日期範圍過濾（迄日包含整天）
func TestPointsTransactionRepository_List_DateRange(t *testing.T) {
	// Arrange
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsTransactionRepository(db)
	memberID := createTestMemberRow(t, db, "Alice", nil)
	appendTx(t, repo, memberID, points.TransactionTypeCredit, 1, time.Date(2024, 2, 29, 23, 59, 0, 0, time.Local))
	appendTx(t, repo, memberID, points.TransactionTypeCredit, 2, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local))
	appendTx(t, repo, memberID, points.TransactionTypeCredit, 3, time.Date(2024, 3, 2, 23, 30, 0, 0, time.Local))
	appendTx(t, repo, memberID, points.TransactionTypeCredit, 4, time.Date(2024, 3, 3, 0, 0, 0, 0, time.Local))
	r, err := points.NewDateRange("2024-03-01", "2024-03-02", time.Local)
	require.NoError(t, err)

	// Act
	views, err := repo.List(nil, points.TransactionQuery{Page: firstPage(t), Range: r})
	require.NoError(t, err)
	count, err := repo.Count(nil, points.TransactionQuery{Page: firstPage(t), Range: r})
	require.NoError(t, err)

	// Assert
	require.Len(t, views, 2)
	assert.Equal(t, 3, views[0].Points)
	assert.Equal(t, 2, views[1].Points)
	assert.Equal(t, int64(2), count)
}

// Test 12: 分頁
func TestPointsTransactionRepository_List_Pagination(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsTransactionRepository(db)
	memberID := createTestMemberRow(t, db, "Alice", nil)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)
	for i := 1; i <= 7; i++ {
		appendTx(t, repo, memberID, points.TransactionTypeCredit, i, base.Add(time.Duration(i)*time.Minute))
	}
	page3, _ := shared.NewPageRequest(3, 3)

	views, err := repo.List(nil, points.TransactionQuery{Page: page3})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 1, views[0].Points)
}

// Test 13: DeleteByMemberID 只刪除該會員的交易
func TestPointsTransactionRepository_DeleteByMemberID(t *testing.T) {
	db := persistencetest.SetupTestDB(t)
	repo := NewPointsTransactionRepository(db)
	alice := createTestMemberRow(t, db, "Alice", nil)
	bob := createTestMemberRow(t, db, "Bob", nil)
	now := time.Now()
	appendTx(t, repo, alice, points.TransactionTypeCredit, 1, now)
	appendTx(t, repo, alice, points.TransactionTypeCredit, 2, now)
	appendTx(t, repo, bob, points.TransactionTypeCredit, 3, now)

	deleted, err := repo.DeleteByMemberID(nil, alice)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	remaining, _ := repo.Count(nil, points.TransactionQuery{Page: firstPage(t)})
	assert.Equal(t, int64(1), remaining)
}
