package points_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
)

func mustAmount(t *testing.T, v int) points.PointsAmount {
	t.Helper()
	amount, err := points.NewPositivePointsAmount(v)
	require.NoError(t, err)
	return amount
}

func mustDescription(t *testing.T, s string, txType points.TransactionType) points.Description {
	t.Helper()
	d, err := points.NewDescription(s, points.DefaultDescriptionFor(txType))
	require.NoError(t, err)
	return d
}

// ===========================
// PointsAccount 建構測試
// ===========================

// Test 1: NewPointsAccount 成功建立
func TestNewPointsAccount_ValidMemberID_Success(t *testing.T) {
	// Arrange
	memberID := points.MemberIDFromInt(1)

	// Act
	account, err := points.NewPointsAccount(memberID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, memberID, account.MemberID())
	assert.True(t, account.AccountID().IsEmpty(), "ID is assigned on save")
	assert.Equal(t, 0, account.Balance().Value())
	assert.Equal(t, 0, account.BalanceDelta())
}

// Test 2: NewPointsAccount 無效 MemberID
func TestNewPointsAccount_EmptyMemberID_ReturnsError(t *testing.T) {
	account, err := points.NewPointsAccount(points.MemberID{})

	assert.ErrorIs(t, err, points.ErrInvalidMemberID)
	assert.Nil(t, account)
}

// Test 3: NewPointsAccount 發布 AccountCreated 事件
func TestNewPointsAccount_PublishesAccountCreatedEvent(t *testing.T) {
	account, _ := points.NewPointsAccount(points.MemberIDFromInt(9))

	events := account.PullEvents()

	require.Len(t, events, 1)
	assert.Equal(t, points.EventTypeAccountCreated, events[0].EventType())
	assert.Equal(t, "9", events[0].AggregateID())
	assert.NotEmpty(t, events[0].EventID())
	assert.Empty(t, account.PullEvents(), "PullEvents clears the list")
}

// ===========================
// Credit / Debit
// ===========================

// Test 4: Credit 增加餘額並產生交易
func TestPointsAccount_Credit_IncreasesBalance(t *testing.T) {
	// Arrange
	account, _ := points.ReconstructPointsAccount(points.AccountIDFromInt(1), points.MemberIDFromInt(2), 100, time.Now(), time.Now())

	// Act
	tx, err := account.Credit(mustAmount(t, 50), mustDescription(t, "bonus", points.TransactionTypeCredit))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 150, account.Balance().Value())
	assert.Equal(t, 50, account.BalanceDelta())
	assert.Equal(t, points.TransactionTypeCredit, tx.Type())
	assert.Equal(t, 50, tx.Points().Value())
	assert.Equal(t, 50, tx.SignedPoints())
	assert.Equal(t, "bonus", tx.Description().String())
	assert.Equal(t, account.MemberID(), tx.MemberID())

	events := account.PullEvents()
	require.Len(t, events, 1)
	changed, ok := events[0].(*points.PointsChangedEvent)
	require.True(t, ok)
	assert.Equal(t, points.EventTypePointsCredited, changed.EventType())
	assert.Equal(t, 150, changed.BalanceAfter().Value())
}

// Test 5: Debit 扣減餘額
func TestPointsAccount_Debit_DecreasesBalance(t *testing.T) {
	account, _ := points.ReconstructPointsAccount(points.AccountIDFromInt(1), points.MemberIDFromInt(2), 150, time.Now(), time.Now())

	tx, err := account.Debit(mustAmount(t, 150), mustDescription(t, "", points.TransactionTypeDebit))

	require.NoError(t, err)
	assert.Equal(t, 0, account.Balance().Value())
	assert.Equal(t, -150, account.BalanceDelta())
	assert.Equal(t, -150, tx.SignedPoints())
	assert.Equal(t, points.DefaultDebitDescription, tx.Description().String())
}

// Test 6: Debit 餘額不足時狀態不變
func TestPointsAccount_Debit_InsufficientBalance_NoStateChange(t *testing.T) {
	// Arrange
	account, _ := points.ReconstructPointsAccount(points.AccountIDFromInt(1), points.MemberIDFromInt(2), 150, time.Now(), time.Now())

	// Act
	tx, err := account.Debit(mustAmount(t, 200), mustDescription(t, "", points.TransactionTypeDebit))

	// Assert
	assert.ErrorIs(t, err, points.ErrInsufficientPoints)
	assert.Nil(t, tx)
	assert.Equal(t, 150, account.Balance().Value())
	assert.Equal(t, 0, account.BalanceDelta())
	assert.Empty(t, account.PullEvents())
}

// Test 7: 零積分被拒絕
func TestPointsAccount_ZeroAmount_Rejected(t *testing.T) {
	account, _ := points.NewPointsAccount(points.MemberIDFromInt(2))
	zero, _ := points.NewPointsAmount(0)
	d := mustDescription(t, "", points.TransactionTypeCredit)

	_, err := account.Credit(zero, d)
	assert.ErrorIs(t, err, points.ErrNonPositivePoints)

	_, err = account.Debit(zero, d)
	assert.ErrorIs(t, err, points.ErrNonPositivePoints)
}

// Test 8: 一連串 credit / debit 後，餘額等於交易帶號總和
func TestPointsAccount_BalanceEqualsSignedSumOfTransactions(t *testing.T) {
	// Arrange
	account, _ := points.NewPointsAccount(points.MemberIDFromInt(3))
	ops := []struct {
		credit bool
		amount int
	}{
		{true, 100}, {true, 50}, {false, 200}, {false, 30}, {true, 5}, {false, 125},
	}

	// Act
	sum := 0
	for _, op := range ops {
		var (
			tx  *points.PointsTransaction
			err error
		)
		if op.credit {
			tx, err = account.Credit(mustAmount(t, op.amount), mustDescription(t, "", points.TransactionTypeCredit))
		} else {
			tx, err = account.Debit(mustAmount(t, op.amount), mustDescription(t, "", points.TransactionTypeDebit))
		}
		if err != nil {
			assert.ErrorIs(t, err, points.ErrInsufficientPoints)
			continue
		}
		sum += tx.SignedPoints()
	}

	// Assert
	assert.Equal(t, sum, account.Balance().Value())
	assert.Equal(t, 0, account.Balance().Value())
}

// Test 9: MarkPersisted 重設差額並指派 ID
func TestPointsAccount_MarkPersisted(t *testing.T) {
	account, _ := points.NewPointsAccount(points.MemberIDFromInt(3))
	_, err := account.Credit(mustAmount(t, 10), mustDescription(t, "", points.TransactionTypeCredit))
	require.NoError(t, err)
	require.Equal(t, 10, account.BalanceDelta())

	account.MarkPersisted(points.AccountIDFromInt(77))

	assert.Equal(t, int64(77), account.AccountID().Int64())
	assert.Equal(t, 0, account.BalanceDelta())
}

// Test 10: Reconstruct 拒絕負數餘額
func TestReconstructPointsAccount_NegativeBalance_ReturnsError(t *testing.T) {
	_, err := points.ReconstructPointsAccount(points.AccountIDFromInt(1), points.MemberIDFromInt(1), -1, time.Now(), time.Now())

	assert.ErrorIs(t, err, points.ErrNegativePointsAmount)
}
