package telegraph

import (
	"context"
	"net/url"
	"strconv"
)

// Page is a published page. Content is present only when requested.
type Page struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AuthorName  string `json:"author_name,omitempty"`
	AuthorURL   string `json:"author_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Content     []Node `json:"content,omitempty"`
	Views       int    `json:"views"`
	CanEdit     bool   `json:"can_edit,omitempty"`
}

// PageList is one window of an account's pages, most recent first.
type PageList struct {
	TotalCount int    `json:"total_count"`
	Pages      []Page `json:"pages"`
}

// PageViews is a page view counter, optionally filtered by period.
type PageViews struct {
	Views int `json:"views"`
}

// PageParams describes a page to create or edit. Content may be a node
// tree ([]Node), a markup string, or a Markdown string; Format applies to
// string content and defaults to FormatHTML.
type PageParams struct {
	Title         string
	AuthorName    string
	AuthorURL     string
	Content       any
	Format        Format
	ReturnContent bool
}

// CreatePage publishes a new page.
func (c *Client) CreatePage(ctx context.Context, p PageParams) (*Page, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	params, err := c.pageParams(p)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := c.invoke(ctx, "createPage", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// EditPage replaces an existing page's title and content.
func (c *Client) EditPage(ctx context.Context, path string, p PageParams) (*Page, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, ErrEmptyPath
	}
	params, err := c.pageParams(p)
	if err != nil {
		return nil, err
	}
	params.Set("path", path)

	var page Page
	if err := c.invoke(ctx, "editPage/"+path, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPage fetches a page, including its content tree when returnContent
// is set.
func (c *Client) GetPage(ctx context.Context, path string, returnContent bool) (*Page, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	params := url.Values{}
	params.Set("return_content", strconv.FormatBool(returnContent))

	var page Page
	if err := c.invoke(ctx, "getPage/"+path, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPageList returns up to limit pages starting at offset. Limit is
// clamped to the service maximum of 200; zero means 50.
func (c *Client) GetPageList(ctx context.Context, offset, limit int) (*PageList, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = 50
	case limit > 200:
		limit = 200
	}

	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))

	var list PageList
	if err := c.invoke(ctx, "getPageList", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ViewsFilter narrows GetViews to a period. Zero fields are omitted; the
// service requires each finer field to come with the coarser ones.
type ViewsFilter struct {
	Year  int
	Month int
	Day   int
	Hour  int // 1-23; zero means unset
}

// GetViews returns the number of views of a page, optionally narrowed by
// filter.
func (c *Client) GetViews(ctx context.Context, path string, filter *ViewsFilter) (*PageViews, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	params := url.Values{}
	if filter != nil {
		if filter.Year > 0 {
			params.Set("year", strconv.Itoa(filter.Year))
		}
		if filter.Month > 0 {
			params.Set("month", strconv.Itoa(filter.Month))
		}
		if filter.Day > 0 {
			params.Set("day", strconv.Itoa(filter.Day))
		}
		if filter.Hour > 0 {
			params.Set("hour", strconv.Itoa(filter.Hour))
		}
	}

	var views PageViews
	if err := c.invoke(ctx, "getViews/"+path, params, &views); err != nil {
		return nil, err
	}
	return &views, nil
}

// pageParams builds the shared createPage/editPage parameter set, running
// the content through the Format dispatcher.
func (c *Client) pageParams(p PageParams) (url.Values, error) {
	if p.Title == "" {
		return nil, ErrEmptyTitle
	}
	if p.Content == nil {
		return nil, ErrEmptyContent
	}

	nodes, err := Content(p.Content, p.Format)
	if err != nil {
		return nil, err
	}
	encoded, err := NodesToJSON(nodes)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("title", p.Title)
	params.Set("content", string(encoded))
	if p.AuthorName != "" {
		params.Set("author_name", p.AuthorName)
	}
	if p.AuthorURL != "" {
		params.Set("author_url", p.AuthorURL)
	}
	if p.ReturnContent {
		params.Set("return_content", "true")
	}
	return params, nil
}
