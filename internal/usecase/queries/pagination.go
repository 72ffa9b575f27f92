package queries

// PerPage is the fixed page size for product review listings.
const PerPage = 10

type Pagination struct {
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Count int64 `json:"count"`
	Next  *int  `json:"next"`
	Prev  *int  `json:"prev"`
}

// ClampPage normalizes the requested page: anything below 1 becomes 1.
// Pages past the end are left alone; they resolve to an empty list.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// TotalPages reports how many pages a listing of count rows spans, never
// fewer than one.
func TotalPages(count int64) int {
	pages := int((count + PerPage - 1) / PerPage)
	if pages < 1 {
		pages = 1
	}
	return pages
}

func NewPagination(page int, count int64) Pagination {
	pages := TotalPages(count)

	p := Pagination{Page: page, Pages: pages, Count: count}
	if page > 1 {
		prev := page - 1
		p.Prev = &prev
	}
	if page < pages {
		next := page + 1
		p.Next = &next
	}
	return p
}
