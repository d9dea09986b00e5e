package pagination

// PageRef points at an adjacent page, carrying the limit so clients can
// request it verbatim.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pages describes the slice of results a page/limit pair selects out of
// total results, plus links to the neighbouring pages when they exist.
type Pages struct {
	Previous   *PageRef
	Next       *PageRef
	StartIndex int
	EndIndex   int
}

// Paginate computes the result window for a 1-based page.
// Previous is present iff the window does not start at the first result;
// Next is present iff results remain beyond the window.
//
// Callers validate page >= 1 and limit >= 1 before calling; total may be 0.
func Paginate(page, limit, total int) Pages {
	startIndex := (page - 1) * limit
	endIndex := startIndex + limit

	pages := Pages{
		StartIndex: startIndex,
		EndIndex:   endIndex,
	}

	if startIndex > 0 {
		pages.Previous = &PageRef{Page: page - 1, Limit: limit}
	}
	if endIndex < total {
		pages.Next = &PageRef{Page: page + 1, Limit: limit}
	}

	return pages
}
