package when

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/idid/internal/ledger"
)

// RangeSeparator splits the two endpoints of a range expression.
const RangeSeparator = ".."

// Filter parses date expressions and FROM..TO range expressions into a
// date filter, resolving every expression relative to now. Endpoint
// order within a range does not matter.
func Filter(dates, ranges []string, now time.Time) (*ledger.DateFilter, error) {
	singles, err := Dates(dates, now)
	if err != nil {
		return nil, err
	}

	pairs := make([]time.Time, 0, 2*len(ranges))
	for _, expr := range ranges {
		from, to, found := strings.Cut(expr, RangeSeparator)
		if !found || from == "" || to == "" {
			return nil, fmt.Errorf("invalid range %q; use FROM%sTO", expr, RangeSeparator)
		}
		endpoints, err := Dates([]string{from, to}, now)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, endpoints...)
	}

	return ledger.NewDateFilter(pairs, singles), nil
}
