package auth

import (
	"time"

	"github.com/xiangzhu626/jifen/src/internal/domain/admin"
)

// AdminInfo 管理員公開資訊（不含密碼雜湊）
type AdminInfo struct {
	ID       int64
	Username string
}

// LoginResult 登入結果
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     AdminInfo
}

func newAdminInfo(a *admin.Admin) AdminInfo {
	return AdminInfo{
		ID:       a.AdminID().Int64(),
		Username: a.Username(),
	}
}
