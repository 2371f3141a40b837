package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
)

// TimeLayout 回應中的時間格式（伺服器本地時間）
const TimeLayout = "2006-01-02 15:04:05"

// BadRequestMessage 請求內容無法解析
const BadRequestMessage = "请求格式错误"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(TimeLayout)
}

// optionalString 空字串輸出為 null
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// paginationJSON 分頁資訊
type paginationJSON struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// queryInt 讀取整數查詢參數；未提供時為 0，非數字時返回 ErrInvalidPagination
func queryInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, shared.ErrInvalidPagination.WithContext(key, raw)
	}
	return v, nil
}

// flexibleID 接受 JSON 數字或字串的 ID（前端兩種都會送）
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}
