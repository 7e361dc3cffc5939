package truncate

import "sort"

// runeBounds returns every rune boundary of s as a byte offset, including
// 0 and len(s).
func runeBounds(s string) []int {
	bounds := make([]int, 0, len(s)+1)
	for i := range s {
		bounds = append(bounds, i)
	}
	return append(bounds, len(s))
}

// keepHead keeps the longest prefix that fits together with the marker.
func (t *Truncator) keepHead(text, marker string, limit int) string {
	bounds := runeBounds(text)

	// Largest k such that the candidate fits; k = 0 always fits because
	// the marker alone does.
	k := sort.Search(len(bounds), func(k int) bool {
		return t.counter.Count(text[:bounds[k]]+marker) >= limit
	}) - 1
	if k <= 0 {
		return marker
	}
	return text[:bounds[k]] + marker
}

// keepTail keeps the longest suffix that fits together with the marker.
func (t *Truncator) keepTail(text, marker string, limit int) string {
	bounds := runeBounds(text)

	k := sort.Search(len(bounds), func(k int) bool {
		return t.counter.Count(marker+text[bounds[k]:]) < limit
	})
	if k >= len(bounds)-1 {
		return marker
	}
	return marker + text[bounds[k]:]
}

// keepBoth keeps a prefix worth about half the budget and the longest
// suffix that still fits after it.
func (t *Truncator) keepBoth(text, marker string, limit int) string {
	bounds := runeBounds(text)
	half := (limit - t.counter.Count(marker)) / 2

	h := sort.Search(len(bounds), func(k int) bool {
		return t.counter.Count(text[:bounds[k]]) >= half
	}) - 1
	h = max(h, 0)
	head := text[:bounds[h]]
	if t.counter.Count(head+marker) >= limit {
		return t.keepHead(text, marker, limit)
	}

	rest := bounds[h:]
	k := sort.Search(len(rest), func(k int) bool {
		return t.counter.Count(head+marker+text[rest[k]:]) < limit
	})
	if k >= len(rest) {
		return head + marker
	}
	return head + marker + text[rest[k]:]
}
