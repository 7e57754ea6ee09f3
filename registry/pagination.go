package registry

// pageBounds computes the ascending position window [begin, end) of one
// reverse-chronological page over a filtered range of total entries:
// startFrom skips the most recent entries and count bounds the page size.
// A skip reaching beyond the range is clamped so the oldest entries remain
// the returned page.
func pageBounds(total int, startFrom int, count int) (int, int) {
	if total <= 0 || count <= 0 {
		return 0, 0
	}
	if startFrom < 0 {
		startFrom = 0
	}

	// positions counted backwards from the end of the ascending range
	reverseBegin := startFrom + count
	if total < reverseBegin {
		reverseBegin = total
	}
	reverseEnd := reverseBegin - count
	if reverseEnd < 0 {
		reverseEnd = 0
	}

	return total - reverseBegin, total - reverseEnd
}
