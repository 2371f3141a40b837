package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-at-least-16-bytes"

// ===========================
// BcryptHasher
// ===========================

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, "admin123", hash)
	assert.NoError(t, hasher.Compare(hash, "admin123"))
	assert.ErrorIs(t, hasher.Compare(hash, "admin124"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(0).(*BcryptHasher)

	assert.Equal(t, DefaultBcryptCost, hasher.cost)
}

func TestBcryptHasher_WorksWithAdminAggregate(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	a, err := admin.NewAdmin("admin", hash)
	require.NoError(t, err)

	assert.True(t, a.VerifyPassword(hasher, "admin123"))
	assert.False(t, a.VerifyPassword(hasher, "wrong"))
}

// ===========================
// JWTTokenService
// ===========================

func newTestTokenService(t *testing.T) *JWTTokenService {
	t.Helper()
	svc, err := NewJWTTokenService(TokenConfig{Secret: testSecret, TTL: time.Hour, Issuer: "jifen"})
	require.NoError(t, err)
	return svc.(*JWTTokenService)
}

func TestJWTTokenService_RoundTrip(t *testing.T) {
	// Arrange
	svc := newTestTokenService(t)
	a := admin.ReconstructAdmin(admin.AdminIDFromInt(7), "admin", "hash", time.Now())

	// Act
	token, expiresAt, err := svc.Issue(a)
	require.NoError(t, err)
	claims, err := svc.Parse(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AdminID.Int64())
	assert.Equal(t, "admin", claims.Username)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
}

func TestJWTTokenService_Expired(t *testing.T) {
	svc := newTestTokenService(t)
	a := admin.ReconstructAdmin(admin.AdminIDFromInt(7), "admin", "hash", time.Now())

	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.Issue(a)
	require.NoError(t, err)
	svc.now = time.Now

	_, err = svc.Parse(token)

	assert.ErrorIs(t, err, admin.ErrTokenExpired)
	assert.Equal(t, shared.KindUnauthorized, shared.KindOf(err))
}

func TestJWTTokenService_Rejects(t *testing.T) {
	svc := newTestTokenService(t)
	a := admin.ReconstructAdmin(admin.AdminIDFromInt(7), "admin", "hash", time.Now())
	valid, _, err := svc.Issue(a)
	require.NoError(t, err)

	other, err := NewJWTTokenService(TokenConfig{Secret: "another-secret-0123456789", Issuer: "jifen"})
	require.NoError(t, err)
	foreign, _, err := other.Issue(a)
	require.NoError(t, err)

	otherIssuer, err := NewJWTTokenService(TokenConfig{Secret: testSecret, Issuer: "someone-else"})
	require.NoError(t, err)
	wrongIssuer, _, err := otherIssuer.Issue(a)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"adminId": 7,
		"iss":     "jifen",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noAdmin, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "jifen",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	validParts := strings.Split(valid, ".")
	tampered := strings.Join([]string{validParts[0], strings.Split(noAdmin, ".")[1], validParts[2]}, ".")

	tests := map[string]string{
		"garbage":         "not-a-token",
		"tampered":        tampered,
		"wrong secret":    foreign,
		"wrong issuer":    wrongIssuer,
		"wrong algorithm": hs512,
		"missing admin":   noAdmin,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Parse(token)
			assert.ErrorIs(t, err, admin.ErrInvalidToken)
		})
	}
}

func TestNewJWTTokenService_RequiresSecret(t *testing.T) {
	_, err := NewJWTTokenService(TokenConfig{})

	assert.ErrorIs(t, err, ErrEmptySecret)
}
