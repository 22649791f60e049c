package render

import (
	"fmt"
	"strings"
)

// PageLink is one element of the pagination strip: a numbered page or an
// ellipsis gap.
type PageLink struct {
	Page     int
	Current  bool
	Ellipsis bool
}

// PageLinks builds the pagination strip: always page 1 and the last page,
// the window of two pages around the current one, and an ellipsis exactly
// where the gap starts. A single page renders nothing.
func PageLinks(current, total int) []PageLink {
	if total <= 1 {
		return nil
	}

	var links []PageLink
	for i := 1; i <= total; i++ {
		distance := i - current
		if distance < 0 {
			distance = -distance
		}
		switch {
		case i == current:
			links = append(links, PageLink{Page: i, Current: true})
		case distance < 3 || i == 1 || i == total:
			links = append(links, PageLink{Page: i})
		case distance == 3:
			links = append(links, PageLink{Ellipsis: true})
		}
	}
	return links
}

// Pagination renders the strip as one line, e.g. "1 … 3 4 [5] 6 7 … 10".
func Pagination(current, total int) string {
	links := PageLinks(current, total)
	if len(links) == 0 {
		return ""
	}

	parts := make([]string, 0, len(links))
	for _, link := range links {
		switch {
		case link.Ellipsis:
			parts = append(parts, "…")
		case link.Current:
			parts = append(parts, fmt.Sprintf("[%d]", link.Page))
		default:
			parts = append(parts, fmt.Sprintf("%d", link.Page))
		}
	}
	return strings.Join(parts, " ")
}
