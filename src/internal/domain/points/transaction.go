package points

import "time"

// ===========================
// PointsTransaction 實體
// ===========================

// PointsTransaction 積分交易記錄（審計日誌）
//
// 業務規則：
// - 只能新增（append-only），寫入後不可修改
// - 只有在會員被刪除時才會隨之刪除
// - points 永遠 > 0，方向由 type 表示
type PointsTransaction struct {
	transactionID TransactionID
	memberID      MemberID
	txType        TransactionType
	points        PointsAmount
	description   Description
	createdAt     time.Time
}

// newPointsTransaction 由 PointsAccount 的 Credit / Debit 建立
func newPointsTransaction(
	memberID MemberID,
	txType TransactionType,
	points PointsAmount,
	description Description,
	createdAt time.Time,
) *PointsTransaction {
	return &PointsTransaction{
		memberID:    memberID,
		txType:      txType,
		points:      points,
		description: description,
		createdAt:   createdAt,
	}
}

// ReconstructPointsTransaction 從持久化存儲重建交易記錄
func ReconstructPointsTransaction(
	transactionID TransactionID,
	memberID MemberID,
	txType TransactionType,
	points int,
	description string,
	createdAt time.Time,
) (*PointsTransaction, error) {
	amount, err := NewPositivePointsAmount(points)
	if err != nil {
		return nil, err
	}
	return &PointsTransaction{
		transactionID: transactionID,
		memberID:      memberID,
		txType:        txType,
		points:        amount,
		description:   Description{value: description},
		createdAt:     createdAt,
	}, nil
}

// AssignID 指派資料庫產生的 ID（僅供 Repository 調用）
func (t *PointsTransaction) AssignID(id TransactionID) {
	if t.transactionID.IsEmpty() {
		t.transactionID = id
	}
}

// TransactionID 交易 ID
func (t *PointsTransaction) TransactionID() TransactionID {
	return t.transactionID
}

// MemberID 會員 ID
func (t *PointsTransaction) MemberID() MemberID {
	return t.memberID
}

// Type 交易類型
func (t *PointsTransaction) Type() TransactionType {
	return t.txType
}

// Points 積分數量（> 0）
func (t *PointsTransaction) Points() PointsAmount {
	return t.points
}

// SignedPoints 帶正負號的積分（credit 為正，debit 為負）
func (t *PointsTransaction) SignedPoints() int {
	return t.txType.Sign() * t.points.Value()
}

// Description 交易描述
func (t *PointsTransaction) Description() Description {
	return t.description
}

// CreatedAt 建立時間
func (t *PointsTransaction) CreatedAt() time.Time {
	return t.createdAt
}
