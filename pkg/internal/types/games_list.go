package types

// 列表排序方式.
const (
	SortNewest       = "newest"
	SortPopular      = "popular"
	SortAlphabetical = "alphabetical"
)

// ListGamesRequest 游戏列表查询参数.
type ListGamesRequest struct {
	// Search 标题或描述的大小写不敏感子串过滤，空串不过滤
	Search string `form:"search" rule:"max=512"`
	// Sort 排序方式，缺省 newest
	Sort string `form:"sort" rule:"omitempty,oneof=newest popular alphabetical"`
	// Limit 为 0 表示不分页
	Limit  int `form:"limit"  rule:"min=0,max=500"`
	Offset int `form:"offset" rule:"min=0"`
}

// ListGamesResponse 游戏列表响应.
type ListGamesResponse struct {
	Games []GameDetail `json:"games"`
	// Total 过滤后的总数（分页前）
	Total int `json:"total"`
}
