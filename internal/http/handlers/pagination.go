package handlers

import (
	"net/http"
	"strconv"
)

const maxPageSize = 500

// Pagination mirrors the page metadata block of list responses. A single
// cached aggregate backs every page, so page numbers never reach the cache
// or the upstream.
type Pagination struct {
	CurrentPage     int     `json:"current_page"`
	PageSize        int     `json:"page_size"`
	TotalScores     int     `json:"total_scores"`
	TotalPages      int     `json:"total_pages"`
	HasNext         bool    `json:"has_next"`
	HasPrevious     bool    `json:"has_previous"`
	NextPageURL     *string `json:"next_page_url"`
	PreviousPageURL *string `json:"previous_page_url"`
}

type pageParams struct {
	page int
	size int
}

// parsePageParams reads page and page_size, clamping to 1-based pages and
// bounded sizes. Malformed values fall back to the defaults.
func parsePageParams(r *http.Request, defaultSize int) pageParams {
	p := pageParams{page: 1, size: defaultSize}
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			p.page = v
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			p.size = v
		}
	}
	if p.size > maxPageSize {
		p.size = maxPageSize
	}
	return p
}

// paginate slices one page out of items and builds its metadata. ok is false
// when the page is past the end of a non-first page, which callers map to a
// 404.
func paginate[T any](r *http.Request, items []T, p pageParams) (page []T, meta Pagination, ok bool) {
	total := len(items)
	totalPages := (total + p.size - 1) / p.size

	offset := (p.page - 1) * p.size
	end := offset + p.size
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}
	page = items[offset:end]

	if len(page) == 0 && p.page > 1 {
		return nil, Pagination{}, false
	}

	meta = Pagination{
		CurrentPage: p.page,
		PageSize:    p.size,
		TotalScores: total,
		TotalPages:  totalPages,
		HasNext:     p.page < totalPages,
		HasPrevious: p.page > 1,
	}
	if meta.HasNext {
		meta.NextPageURL = pageURL(r, p.page+1, p.size)
	}
	if meta.HasPrevious {
		meta.PreviousPageURL = pageURL(r, p.page-1, p.size)
	}
	return page, meta, true
}

// pageURL rebuilds the request URL pointing at another page, keeping every
// other query parameter intact.
func pageURL(r *http.Request, page, size int) *string {
	u := *r.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	s := scheme + "://" + r.Host + u.Path + "?" + u.RawQuery
	return &s
}
