package utils

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// PageBounds returns the [start, end) slice bounds of one page over n items.
func PageBounds(n, page, perPage int) (int, int) {
	if page < 1 || perPage < 1 {
		return 0, 0
	}
	start := (page - 1) * perPage
	if start >= n {
		return n, n
	}
	end := start + perPage
	if end > n {
		end = n
	}
	return start, end
}
