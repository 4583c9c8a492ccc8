package view

import (
	"sort"
	"strings"

	"github.com/hrodrigues/mrpcritic/pkg/domain/entities"
)

// PageSize is the fixed number of items shown per page.
const PageSize = 50

// SortColumn identifies the column a view is ordered by
type SortColumn int

const (
	SortByCode SortColumn = iota
	SortByDescription
	SortBySupplier
	SortByAvailable
	SortByDemand
	SortBySuggestedQty
	SortByStatus
)

// String method for SortColumn enum
func (c SortColumn) String() string {
	switch c {
	case SortByCode:
		return "Code"
	case SortByDescription:
		return "Description"
	case SortBySupplier:
		return "Supplier"
	case SortByAvailable:
		return "AvailableStock"
	case SortByDemand:
		return "Demand"
	case SortBySuggestedQty:
		return "SuggestedOrderQty"
	case SortByStatus:
		return "Status"
	default:
		return "Unknown"
	}
}

// SortDirection orders a sort ascending or descending
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// ViewState holds the filter, sort, and pagination state over one
// AnalysisResult. It is a plain value: every transition takes the current
// state and returns the next one, so there is no ambient shared state and the
// same (AnalysisResult, ViewState) pair always yields the same visible page.
//
// A ViewState belongs to exactly one AnalysisResult; start from NewViewState
// whenever a new result replaces the current one.
type ViewState struct {
	FilterText     string
	SupplierFilter string
	MinQty         *float64
	MaxQty         *float64
	SortColumn     SortColumn
	SortDirection  SortDirection
	Page           int
}

// NewViewState returns the initial state: unfiltered, sorted by item code
// ascending, at page 0.
func NewViewState() ViewState {
	return ViewState{SortColumn: SortByCode, SortDirection: Ascending}
}

// SetFilter sets the free-text filter over code and description and resets
// the page to 0.
func (s ViewState) SetFilter(text string) ViewState {
	s.FilterText = text
	s.Page = 0
	return s
}

// SetSupplierFilter sets the exact-match supplier filter and resets the page
// to 0. An empty supplier clears the filter.
func (s ViewState) SetSupplierFilter(supplier string) ViewState {
	s.SupplierFilter = supplier
	s.Page = 0
	return s
}

// SetQuantityBounds sets inclusive bounds on the suggested order quantity and
// resets the page to 0. A nil bound is unset.
func (s ViewState) SetQuantityBounds(min, max *float64) ViewState {
	s.MinQty = min
	s.MaxQty = max
	s.Page = 0
	return s
}

// SetSort changes the sort column and direction. The page is kept; it is
// re-clamped against the filtered set when the page is computed.
func (s ViewState) SetSort(column SortColumn, direction SortDirection) ViewState {
	s.SortColumn = column
	s.SortDirection = direction
	return s
}

// GotoPage moves to page n, clamped into [0, totalPages-1] for the current
// filtered set. Out-of-range requests clamp rather than error.
func (s ViewState) GotoPage(res *entities.AnalysisResult, n int) ViewState {
	totalPages := pageCount(len(filtered(res, s)))
	s.Page = clampPage(n, totalPages)
	return s
}

// Page is the visible window over a filtered, sorted result set.
type Page struct {
	Items         []entities.ClassifiedItem
	Number        int
	TotalPages    int
	FilteredCount int
}

// VisiblePage computes the page for the given result and state. Pure:
// filtering, sorting, and windowing all derive from the arguments alone.
func VisiblePage(res *entities.AnalysisResult, s ViewState) Page {
	items := filtered(res, s)
	sortItems(items, s.SortColumn, s.SortDirection)

	totalPages := pageCount(len(items))
	number := clampPage(s.Page, totalPages)

	start := number * PageSize
	end := start + PageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page{
		Items:         items[start:end],
		Number:        number,
		TotalPages:    totalPages,
		FilteredCount: len(items),
	}
}

// Matches reports whether an item passes the state's filter predicate.
func (s ViewState) Matches(item entities.ClassifiedItem) bool {
	if s.FilterText != "" {
		needle := strings.ToLower(s.FilterText)
		code := strings.ToLower(item.Record.Code)
		desc := strings.ToLower(item.Record.Description)
		if !strings.Contains(code, needle) && !strings.Contains(desc, needle) {
			return false
		}
	}
	if s.SupplierFilter != "" && item.Record.Supplier != s.SupplierFilter {
		return false
	}
	qty := item.Classification.SuggestedOrderQty
	if s.MinQty != nil && qty < *s.MinQty {
		return false
	}
	if s.MaxQty != nil && qty > *s.MaxQty {
		return false
	}
	return true
}

func filtered(res *entities.AnalysisResult, s ViewState) []entities.ClassifiedItem {
	items := make([]entities.ClassifiedItem, 0, len(res.Items))
	for _, item := range res.Items {
		if s.Matches(item) {
			items = append(items, item)
		}
	}
	return items
}

func sortItems(items []entities.ClassifiedItem, column SortColumn, direction SortDirection) {
	sort.SliceStable(items, func(i, j int) bool {
		c := compareByColumn(items[i], items[j], column)
		if direction == Descending {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		// Ties always break by item code ascending, regardless of direction.
		return items[i].Record.Code < items[j].Record.Code
	})
}

func compareByColumn(a, b entities.ClassifiedItem, column SortColumn) int {
	switch column {
	case SortByDescription:
		return strings.Compare(a.Record.Description, b.Record.Description)
	case SortBySupplier:
		return strings.Compare(a.Record.Supplier, b.Record.Supplier)
	case SortByAvailable:
		return compareFloat(a.Classification.AvailableStock, b.Classification.AvailableStock)
	case SortByDemand:
		return compareFloat(a.Record.Demand, b.Record.Demand)
	case SortBySuggestedQty:
		return compareFloat(a.Classification.SuggestedOrderQty, b.Classification.SuggestedOrderQty)
	case SortByStatus:
		return int(a.Classification.Status) - int(b.Classification.Status)
	default:
		return strings.Compare(a.Record.Code, b.Record.Code)
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func pageCount(filteredCount int) int {
	return (filteredCount + PageSize - 1) / PageSize
}

func clampPage(n, totalPages int) int {
	if n < 0 {
		return 0
	}
	if totalPages == 0 {
		return 0
	}
	if n >= totalPages {
		return totalPages - 1
	}
	return n
}
