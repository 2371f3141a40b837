package shared

// 分頁預設值
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ErrInvalidPagination 分頁參數無效
var ErrInvalidPagination = NewDomainError(
	KindInvalidArgument,
	"PAGINATION_INVALID",
	"分页参数无效",
)

// PageRequest 分頁請求值對象
type PageRequest struct {
	page     int
	pageSize int
}

// NewPageRequest 建立分頁請求
//
// 規則：
// - page 為 0 時使用預設值 1，負數為錯誤
// - pageSize 為 0 時使用預設值 10，負數為錯誤，超過 100 時截斷為 100
func NewPageRequest(page, pageSize int) (PageRequest, error) {
	if page < 0 || pageSize < 0 {
		return PageRequest{}, ErrInvalidPagination.WithContext(
			"page", page,
			"page_size", pageSize,
		)
	}
	if page == 0 {
		page = DefaultPage
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return PageRequest{page: page, pageSize: pageSize}, nil
}

// Page 頁碼（從 1 開始）
func (p PageRequest) Page() int {
	return p.page
}

// PageSize 每頁筆數
func (p PageRequest) PageSize() int {
	return p.pageSize
}

// Offset 資料庫查詢偏移量
func (p PageRequest) Offset() int {
	return (p.page - 1) * p.pageSize
}

// Page 分頁結果
type Page[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}
