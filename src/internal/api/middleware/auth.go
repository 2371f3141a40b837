package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/api/response"
	"github.com/xiangzhu626/jifen/src/internal/application/auth"
	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
	"go.uber.org/zap"
)

// AdminKey gin context 中目前管理員的 key
const AdminKey = "admin"

// JWTAuth 驗證 Authorization: Bearer <token>
//
// 通過後將 *auth.AdminInfo 存入 context。
func JWTAuth(verify auth.VerifyTokenUseCase, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.AbortWithError(c, logger, admin.ErrMissingToken)
			return
		}

		info, err := verify.Execute(token)
		if err != nil {
			response.AbortWithError(c, logger, err)
			return
		}

		c.Set(AdminKey, info)
		c.Next()
	}
}

// CurrentAdmin 取得已驗證的管理員
func CurrentAdmin(c *gin.Context) (*auth.AdminInfo, bool) {
	v, ok := c.Get(AdminKey)
	if !ok {
		return nil, false
	}
	info, ok := v.(*auth.AdminInfo)
	return info, ok
}
