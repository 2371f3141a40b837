package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/api/middleware"
	"github.com/xiangzhu626/jifen/src/internal/api/response"
	"github.com/xiangzhu626/jifen/src/internal/application/auth"
	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
	"go.uber.org/zap"
)

// AuthHandler 登入與管理員帳號
type AuthHandler struct {
	login          auth.LoginUseCase
	changePassword auth.ChangePasswordUseCase
	logger         *zap.Logger
}

func NewAuthHandler(
	login auth.LoginUseCase,
	changePassword auth.ChangePasswordUseCase,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		login:          login,
		changePassword: changePassword,
		logger:         logger,
	}
}

type adminJSON struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HandleServiceError(c, h.logger, admin.ErrMissingCredentials)
		return
	}

	result, err := h.login.Execute(auth.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}

	response.OK(c, gin.H{
		"token":     result.Token,
		"expiresAt": formatTime(result.ExpiresAt),
		"admin":     adminJSON{ID: result.Admin.ID, Username: result.Admin.Username},
	})
}

// Check GET /api/auth/check
func (h *AuthHandler) Check(c *gin.Context) {
	info, ok := middleware.CurrentAdmin(c)
	if !ok {
		response.HandleServiceError(c, h.logger, admin.ErrMissingToken)
		return
	}
	response.OK(c, gin.H{"admin": adminJSON{ID: info.ID, Username: info.Username}})
}

// ChangePassword POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	info, ok := middleware.CurrentAdmin(c)
	if !ok {
		response.HandleServiceError(c, h.logger, admin.ErrMissingToken)
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, BadRequestMessage)
		return
	}

	if err := h.changePassword.Execute(auth.ChangePasswordCommand{
		AdminID:         info.ID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		response.HandleServiceError(c, h.logger, err)
		return
	}

	response.OKWithMessage(c, http.StatusOK, nil, "密码修改成功")
}
