package service

// Page is one page of projected views plus the total match count.
type Page[T any] struct {
	Items []T
	Page  int
	Size  int
	Total int
}

func newPage[T any](items []T, page, size, total int) *Page[T] {
	if page < 1 {
		page = 1
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Page: page, Size: size, Total: total}
}
