package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		startIndex int
		endIndex   int
		previous   *PageRef
		next       *PageRef
	}{
		{
			name:       "first page with more results",
			page:       1,
			limit:      10,
			total:      25,
			startIndex: 0,
			endIndex:   10,
			previous:   nil,
			next:       &PageRef{Page: 2, Limit: 10},
		},
		{
			name:       "middle page has both links",
			page:       2,
			limit:      10,
			total:      25,
			startIndex: 10,
			endIndex:   20,
			previous:   &PageRef{Page: 1, Limit: 10},
			next:       &PageRef{Page: 3, Limit: 10},
		},
		{
			name:       "last page has no next",
			page:       3,
			limit:      10,
			total:      25,
			startIndex: 20,
			endIndex:   30,
			previous:   &PageRef{Page: 2, Limit: 10},
			next:       nil,
		},
		{
			name:       "single page exactly full",
			page:       1,
			limit:      25,
			total:      25,
			startIndex: 0,
			endIndex:   25,
			previous:   nil,
			next:       nil,
		},
		{
			name:       "empty result set",
			page:       1,
			limit:      10,
			total:      0,
			startIndex: 0,
			endIndex:   10,
			previous:   nil,
			next:       nil,
		},
		{
			name:       "page past the end still links back",
			page:       5,
			limit:      10,
			total:      25,
			startIndex: 40,
			endIndex:   50,
			previous:   &PageRef{Page: 4, Limit: 10},
			next:       nil,
		},
		{
			name:       "limit of one",
			page:       2,
			limit:      1,
			total:      3,
			startIndex: 1,
			endIndex:   2,
			previous:   &PageRef{Page: 1, Limit: 1},
			next:       &PageRef{Page: 3, Limit: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := Paginate(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.startIndex, pages.StartIndex)
			assert.Equal(t, tt.endIndex, pages.EndIndex)
			assert.Equal(t, tt.previous, pages.Previous)
			assert.Equal(t, tt.next, pages.Next)
		})
	}
}

func TestPaginateWindowInvariant(t *testing.T) {
	// startIndex = (page-1)*limit must hold for any valid page/limit.
	for page := 1; page <= 20; page++ {
		for limit := 1; limit <= 50; limit += 7 {
			pages := Paginate(page, limit, 1000)
			assert.Equal(t, (page-1)*limit, pages.StartIndex)
			assert.Equal(t, pages.StartIndex+limit, pages.EndIndex)
		}
	}
}
