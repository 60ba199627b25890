package service

// PageMeta 描述一页结果的分页元信息。
// 不变式：Page >= 1；TotalPages >= 1（即使 Total 为 0）；
// From/To 是给界面展示用的 1 基闭区间，Total 为 0 或页码越界时均为 0。
type PageMeta struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
	From       int
	To         int
}

// NewPageMeta 根据总命中数和请求的页码/页大小计算分页元信息。
// 页码只向下钳到 1，不会悄悄跳到最后一页：
// 越界页返回空列表属于正常结果，不是错误。
func NewPageMeta(total int64, page, limit int) PageMeta {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	meta := PageMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}

	from := int64(page-1)*int64(limit) + 1
	if total == 0 || from > total {
		return meta
	}
	to := int64(page) * int64(limit)
	if to > total {
		to = total
	}
	meta.From = int(from)
	meta.To = int(to)
	return meta
}
