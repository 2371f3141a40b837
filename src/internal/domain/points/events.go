package points

import (
	"time"

	"github.com/google/uuid"
)

// 事件類型
const (
	EventTypeAccountCreated = "points.account_created"
	EventTypePointsCredited = "points.credited"
	EventTypePointsDebited  = "points.debited"
)

// eventBase 所有積分事件共用的欄位
//
// AggregateID 使用會員 ID：新帳戶在事件產生時還沒有帳戶 ID，
// 而會員 ID 在帳戶的整個生命週期內不變。
type eventBase struct {
	eventID    string
	memberID   MemberID
	occurredAt time.Time
}

func newEventBase(memberID MemberID) eventBase {
	return eventBase{
		eventID:    uuid.New().String(),
		memberID:   memberID,
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e eventBase) EventID() string {
	return e.eventID
}

// OccurredAt 實現 DomainEvent 介面
func (e eventBase) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e eventBase) AggregateID() string {
	return e.memberID.String()
}

// MemberID 會員 ID
func (e eventBase) MemberID() MemberID {
	return e.memberID
}

// ===========================
// PointsAccountCreated
// ===========================

// PointsAccountCreatedEvent 積分帳戶創建事件
type PointsAccountCreatedEvent struct {
	eventBase
}

// NewPointsAccountCreatedEvent 創建帳戶創建事件
func NewPointsAccountCreatedEvent(memberID MemberID) *PointsAccountCreatedEvent {
	return &PointsAccountCreatedEvent{eventBase: newEventBase(memberID)}
}

// EventType 實現 DomainEvent 介面
func (e *PointsAccountCreatedEvent) EventType() string {
	return EventTypeAccountCreated
}

// ===========================
// PointsCredited / PointsDebited
// ===========================

// PointsChangedEvent 積分變動事件（credit / debit 共用結構）
type PointsChangedEvent struct {
	eventBase
	eventType    string
	amount       PointsAmount
	balanceAfter PointsAmount
	description  string
}

// NewPointsCreditedEvent 創建積分增加事件
func NewPointsCreditedEvent(memberID MemberID, amount, balanceAfter PointsAmount, description string) *PointsChangedEvent {
	return &PointsChangedEvent{
		eventBase:    newEventBase(memberID),
		eventType:    EventTypePointsCredited,
		amount:       amount,
		balanceAfter: balanceAfter,
		description:  description,
	}
}

// NewPointsDebitedEvent 創建積分扣減事件
func NewPointsDebitedEvent(memberID MemberID, amount, balanceAfter PointsAmount, description string) *PointsChangedEvent {
	return &PointsChangedEvent{
		eventBase:    newEventBase(memberID),
		eventType:    EventTypePointsDebited,
		amount:       amount,
		balanceAfter: balanceAfter,
		description:  description,
	}
}

// EventType 實現 DomainEvent 介面
func (e *PointsChangedEvent) EventType() string {
	return e.eventType
}

// Amount 變動的積分
func (e *PointsChangedEvent) Amount() PointsAmount {
	return e.amount
}

// BalanceAfter 變動後餘額
func (e *PointsChangedEvent) BalanceAfter() PointsAmount {
	return e.balanceAfter
}

// Description 交易描述
func (e *PointsChangedEvent) Description() string {
	return e.description
}
