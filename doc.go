// Package telegraph is a client for the Telegraph publishing service
// built around a bidirectional content conversion engine.
//
// The engine translates between three representations of rich text: an
// HTML-like markup string, a lightweight Markdown dialect, and the typed
// node tree the service expects on the wire. Conversions are pure,
// synchronous and lenient: malformed markup degrades to text instead of
// failing. Callers may enter at any stage - hand a node tree, a markup
// string, or a Markdown string to Content and to the page operations.
//
// Basic usage:
//
//	client := telegraph.NewClient(token)
//	page, err := client.CreatePage(ctx, telegraph.PageParams{
//		Title:   "Hello",
//		Content: "# Hello\n\nThis is **bold**.",
//		Format:  telegraph.FormatMarkdown,
//	})
//
// The conversion functions (ParseHTML, MarkdownToHTML, NodesToHTML,
// NodesToMarkdown, NodesToJSON) are usable without a client and are safe
// for concurrent use.
package telegraph
