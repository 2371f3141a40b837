package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
)

// TokenConfig JWT 設定
type TokenConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// ErrEmptySecret 沒有提供簽名金鑰
var ErrEmptySecret = errors.New("jwt secret must not be empty")

// adminClaims 令牌內容
type adminClaims struct {
	AdminID  int64  `json:"adminId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTTokenService 以 HS256 簽發與驗證管理員令牌
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTTokenService 創建令牌服務
func NewJWTTokenService(cfg TokenConfig) (admin.TokenService, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenService{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		issuer: cfg.Issuer,
		now:    time.Now,
	}, nil
}

// Issue 簽發令牌
func (s *JWTTokenService) Issue(a *admin.Admin) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := &adminClaims{
		AdminID:  a.AdminID().Int64(),
		Username: a.Username(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(a.AdminID().Int64(), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse 驗證簽名、演算法、簽發者與有效期限
func (s *JWTTokenService) Parse(tokenString string) (admin.Claims, error) {
	claims := &adminClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return admin.Claims{}, admin.ErrTokenExpired
	case err != nil:
		return admin.Claims{}, admin.ErrInvalidToken.WithContext("reason", err.Error())
	}

	adminID := admin.AdminIDFromInt(claims.AdminID)
	if adminID.IsEmpty() {
		return admin.Claims{}, admin.ErrInvalidToken.WithContext("reason", "missing admin id")
	}

	return admin.Claims{
		AdminID:   adminID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
