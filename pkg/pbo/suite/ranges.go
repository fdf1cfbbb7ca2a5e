package suite

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

var ErrRange = errors.New("invalid range")

// ParseRanges expands a comma separated list of ids and ranges within
// [lo, hi]. An item is either a single id or a range "a-b". The first item
// may be written "-b", meaning lo..b, and the last one "a-", meaning a..hi.
// Ids are returned in the order they first appear.
func ParseRanges(s string, lo, hi int) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrRange)
	}
	for _, c := range s {
		if c != ',' && c != '-' && (c < '0' || c > '9') {
			return nil, fmt.Errorf("%w: unexpected character %q in %q", ErrRange, c, s)
		}
	}

	items := strings.Split(s, ",")
	seen := sets.New[int]()
	var ids []int
	add := func(a, b int) {
		for id := a; id <= b; id++ {
			if !seen.Has(id) {
				seen.Insert(id)
				ids = append(ids, id)
			}
		}
	}

	for i, item := range items {
		a, b, err := parseItem(item, lo, hi, i == 0, i == len(items)-1)
		if err != nil {
			return nil, fmt.Errorf("%w in %q", err, s)
		}
		add(a, b)
	}
	return ids, nil
}

func parseItem(item string, lo, hi int, first, last bool) (int, int, error) {
	if item == "" {
		return 0, 0, fmt.Errorf("%w: empty item", ErrRange)
	}
	from, to, isRange := strings.Cut(item, "-")
	if strings.Contains(to, "-") {
		return 0, 0, fmt.Errorf("%w: %q", ErrRange, item)
	}

	var a, b int
	var err error
	switch {
	case !isRange:
		if a, err = strconv.Atoi(from); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrRange, item)
		}
		b = a
	case from == "" && to == "":
		return 0, 0, fmt.Errorf("%w: %q", ErrRange, item)
	case from == "":
		if !first {
			return 0, 0, fmt.Errorf("%w: open start %q is only allowed first", ErrRange, item)
		}
		a = lo
		if b, err = strconv.Atoi(to); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrRange, item)
		}
	case to == "":
		if !last {
			return 0, 0, fmt.Errorf("%w: open end %q is only allowed last", ErrRange, item)
		}
		b = hi
		if a, err = strconv.Atoi(from); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrRange, item)
		}
	default:
		if a, err = strconv.Atoi(from); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrRange, item)
		}
		if b, err = strconv.Atoi(to); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrRange, item)
		}
	}

	if a > b {
		return 0, 0, fmt.Errorf("%w: %q is decreasing", ErrRange, item)
	}
	if a < lo || b > hi {
		return 0, 0, fmt.Errorf("%w: %q outside [%d, %d]", ErrRange, item, lo, hi)
	}
	return a, b, nil
}
