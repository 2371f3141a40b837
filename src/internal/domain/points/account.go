package points

import (
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// ===========================
// PointsAccount 聚合根
// ===========================

// PointsAccount 積分帳戶聚合根
//
// 設計原則：
// 1. 輕量級聚合：不包含交易集合（交易記錄儲存在獨立表）
// 2. 餘額是交易記錄的快取彙總：balance == Σcredit − Σdebit
// 3. 每一次餘額變動都產生一筆 PointsTransaction，兩者在同一事務中持久化
// 4. 事件驅動：所有狀態變更都記錄領域事件
//
// 業務不變條件：
// - balance >= 0
// - 每個會員只有一個帳戶（資料庫唯一索引 member_id）
//
// 持久化：
// - 聚合記錄載入時的餘額（persistedBalance），Repository.Update 只寫入差額，
//   以「points = points + delta」的條件式更新套用，避免並發時遺失更新
type PointsAccount struct {
	accountID AccountID
	memberID  MemberID

	balance          PointsAmount
	persistedBalance PointsAmount

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// ===========================
// 建構函數
// ===========================

// NewPointsAccount 創建新的積分帳戶（餘額為 0）
//
// 錯誤：memberID 為空時返回 ErrInvalidMemberID
func NewPointsAccount(memberID MemberID) (*PointsAccount, error) {
	if memberID.IsEmpty() {
		return nil, ErrInvalidMemberID.WithContext(
			"reason", "memberID cannot be empty",
		)
	}

	now := time.Now()
	account := &PointsAccount{
		memberID:  memberID,
		createdAt: now,
		updatedAt: now,
		events:    make([]shared.DomainEvent, 0),
	}
	account.addEvent(NewPointsAccountCreatedEvent(memberID))

	return account, nil
}

// ReconstructPointsAccount 從持久化存儲重建聚合根
//
// 不發布事件；points 為負數時返回錯誤（資料損壞）。
func ReconstructPointsAccount(
	accountID AccountID,
	memberID MemberID,
	points int,
	createdAt time.Time,
	updatedAt time.Time,
) (*PointsAccount, error) {
	balance, err := NewPointsAmount(points)
	if err != nil {
		return nil, err
	}

	return &PointsAccount{
		accountID:        accountID,
		memberID:         memberID,
		balance:          balance,
		persistedBalance: balance,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		events:           make([]shared.DomainEvent, 0),
	}, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

// AccountID 獲取帳戶 ID（新帳戶在保存前為空）
func (a *PointsAccount) AccountID() AccountID {
	return a.accountID
}

// MemberID 獲取會員 ID
func (a *PointsAccount) MemberID() MemberID {
	return a.memberID
}

// Balance 當前餘額
func (a *PointsAccount) Balance() PointsAmount {
	return a.balance
}

// BalanceDelta 自載入（或上次保存）以來的餘額變化量
func (a *PointsAccount) BalanceDelta() int {
	return a.balance.Value() - a.persistedBalance.Value()
}

// CreatedAt 獲取創建時間
func (a *PointsAccount) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt 獲取最後更新時間
func (a *PointsAccount) UpdatedAt() time.Time {
	return a.updatedAt
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// Credit 增加積分
//
// 參數：
//   amount - 增加的積分（必須 > 0）
//   description - 交易描述（已套用預設值）
//
// 返回：
//   *PointsTransaction - 待持久化的交易記錄
//   error - amount 為 0 或溢位
func (a *PointsAccount) Credit(amount PointsAmount, description Description) (*PointsTransaction, error) {
	if amount.IsZero() {
		return nil, ErrNonPositivePoints.WithContext("value", 0)
	}

	newBalance, err := a.balance.Add(amount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	a.balance = newBalance
	a.updatedAt = now

	a.addEvent(NewPointsCreditedEvent(a.memberID, amount, newBalance, description.String()))

	return newPointsTransaction(a.memberID, TransactionTypeCredit, amount, description, now), nil
}

// Debit 扣減積分
//
// 業務規則：
// - 餘額必須 >= amount，否則返回 ErrInsufficientPoints（狀態不變）
//
// 注意：這裡的檢查基於載入時的餘額；並發情況下最終由
// Repository.Update 的條件式更新保證餘額不會變成負數。
func (a *PointsAccount) Debit(amount PointsAmount, description Description) (*PointsTransaction, error) {
	if amount.IsZero() {
		return nil, ErrNonPositivePoints.WithContext("value", 0)
	}

	newBalance, err := a.balance.Subtract(amount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	a.balance = newBalance
	a.updatedAt = now

	a.addEvent(NewPointsDebitedEvent(a.memberID, amount, newBalance, description.String()))

	return newPointsTransaction(a.memberID, TransactionTypeDebit, amount, description, now), nil
}

// MarkPersisted 保存成功後由 Repository 調用
//
// 指派資料庫 ID（新帳戶）並把目前餘額視為已持久化。
func (a *PointsAccount) MarkPersisted(id AccountID) {
	if a.accountID.IsEmpty() {
		a.accountID = id
	}
	a.persistedBalance = a.balance
}

// ===========================
// 事件管理
// ===========================

func (a *PointsAccount) addEvent(event shared.DomainEvent) {
	a.events = append(a.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
//
// 由 Application Layer 在事務提交後調用並交給 EventPublisher。
func (a *PointsAccount) PullEvents() []shared.DomainEvent {
	events := a.events
	a.events = make([]shared.DomainEvent, 0)
	return events
}
