package security

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost bcrypt 預設成本
const DefaultBcryptCost = 10

// BcryptHasher 以 bcrypt 實作 admin.PasswordHasher
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cost 超出 bcrypt 範圍時使用預設值
func NewBcryptHasher(cost int) admin.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash 產生密碼雜湊
func (h *BcryptHasher) Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Compare 不匹配時返回 bcrypt.ErrMismatchedHashAndPassword
func (h *BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
