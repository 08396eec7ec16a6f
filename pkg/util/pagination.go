package util

// Window converts a 1-based page and a page size into skip/limit.
// size <= 0 means no limit. size is clamped to maxSize when maxSize > 0.
func Window(page, size, maxSize int) (skip, limit int64) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return 0, 0
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return int64((page - 1) * size), int64(size)
}
