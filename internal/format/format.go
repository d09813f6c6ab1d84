package format

import (
	"time"

	"github.com/dustin/go-humanize"
)

// TimeAgo renders t relative to now, e.g. "3 hours ago". Anything under a
// minute old, or in the future, is "Just now".
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if now.Sub(t) < time.Minute {
		return "Just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Date renders t as "January 2, 2006".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// ImageTooLarge is the user-facing message for an upload over maxSize bytes.
func ImageTooLarge(maxSize int64) string {
	return "Image must be " + humanize.IBytes(uint64(maxSize)) + " or smaller"
}

type Page[T any] struct {
	Items   []T `json:"items"`
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// Paginate slices items into the requested 1-based page. Out of range pages
// return an empty item list with the totals filled in.
func Paginate[T any](items []T, page, perPage, defaultPerPage int) Page[T] {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage <= 0 {
		perPage = len(items)
		if perPage == 0 {
			perPage = 1
		}
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	p := Page[T]{
		Items:   []T{},
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   (total + perPage - 1) / perPage,
	}

	start := (page - 1) * perPage
	if start >= total {
		return p
	}
	end := min(start+perPage, total)
	p.Items = items[start:end]
	return p
}
