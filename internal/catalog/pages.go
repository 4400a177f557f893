package catalog

// Ellipsis marks a gap in a PageWindow.
const Ellipsis = 0

const windowThreshold = 7

// PageWindow returns the page numbers a pager control shows for current
// out of total. Every page is listed up to seven pages; beyond that the
// first and last page stay visible and the gap is marked with Ellipsis.
func PageWindow(current, total int) []int {
	if total <= 0 {
		return []int{}
	}
	if total <= windowThreshold {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	switch {
	case current <= 4:
		return []int{1, 2, 3, 4, Ellipsis, total}
	case current >= total-3:
		pages := []int{1, Ellipsis}
		for i := total - 4; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	default:
		return []int{1, Ellipsis, current - 1, current, current + 1, Ellipsis, total}
	}
}
