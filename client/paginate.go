package client

// PageCount is ceil(total/size). Zero records means zero pages.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// PageBounds returns the [start, end) slice bounds for a 1-based page.
// Out-of-range pages clamp to an empty slice at the end.
func PageBounds(total, page, size int) (int, int) {
	if total <= 0 || size <= 0 || page <= 0 {
		return 0, 0
	}
	start := (page - 1) * size
	if start >= total {
		return total, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return start, end
}
