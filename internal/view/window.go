package view

// WindowSize is the number of page links shown around the current page.
const WindowSize = 5

// PageWindow is the set of page numbers a pagination control shows.
// ShowFirst and ShowLast add jump links to page 1 and LastPage when they
// fall outside Pages.
type PageWindow struct {
	Pages     []int `json:"pages"`
	ShowFirst bool  `json:"showFirst"`
	ShowLast  bool  `json:"showLast"`
}

// Window returns up to size page numbers centred on page, shifted to stay
// within [1, lastPage].
func Window(page, lastPage, size int) PageWindow {
	if size < 1 {
		size = 1
	}
	if lastPage < 1 {
		lastPage = 1
	}
	half := size / 2

	start := max(page-half, 1)
	end := min(start+size-1, lastPage)
	if end-start < size-1 {
		start = max(end-size+1, 1)
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return PageWindow{
		Pages:     pages,
		ShowFirst: page > half+1 && start > 1,
		ShowLast:  end < lastPage,
	}
}
