package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	telegraph "github.com/go-telegraph/telegraph"
	"github.com/go-telegraph/telegraph/internal/fileutil"
)

// runPublish creates or edits a page from a local file.
func runPublish(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	var f publishFlags
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.token, "token", "", "access token (overrides config)")
	fs.StringVar(&f.title, "title", "", "page title (default: file name)")
	fs.StringVar(&f.authorName, "author-name", "", "author name shown below the title")
	fs.StringVar(&f.authorURL, "author-url", "", "link opened on author name tap")
	fs.StringVar(&f.format, "format", "", "content format: html, markdown (default: by extension)")
	fs.StringVar(&f.editPath, "edit", "", "edit the page at this path instead of creating one")
	fs.Usage = func() { printPublishUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return ErrMissingInput
	}

	cfg, err := loadConfig(f.common)
	if err != nil {
		return err
	}
	token := pickString(f.token, cfg.Account.AccessToken)
	if token == "" {
		return ErrMissingToken
	}

	inputPath := fs.Arg(0)
	content, err := fileutil.ReadString(inputPath)
	if err != nil {
		return err
	}

	formatName := pickString(f.format, cfg.Publish.Format)
	if formatName == "" {
		formatName, err = fileutil.FormatForFile(inputPath)
		if err != nil {
			return err
		}
	}
	format := telegraph.FormatHTML
	if formatName == "markdown" || formatName == "md" {
		format = telegraph.FormatMarkdown
	}

	title := f.title
	if title == "" {
		base := filepath.Base(inputPath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	client := telegraph.NewClient(token)
	params := telegraph.PageParams{
		Title:      title,
		AuthorName: pickString(f.authorName, cfg.Account.AuthorName),
		AuthorURL:  pickString(f.authorURL, cfg.Account.AuthorURL),
		Content:    content,
		Format:     format,
	}

	var page *telegraph.Page
	if f.editPath != "" {
		page, err = client.EditPage(ctx, f.editPath, params)
	} else {
		page, err = client.CreatePage(ctx, params)
	}
	if err != nil {
		return err
	}

	fmt.Println(page.URL)
	return nil
}

// runUpload sends local media files to the upload endpoint and prints the
// hosted URLs.
func runUpload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	var f uploadFlags
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printUploadUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return ErrMissingInput
	}

	client := telegraph.NewClient("")
	srcs, err := client.Upload(ctx, fs.Args()...)
	if err != nil {
		return err
	}
	for _, src := range srcs {
		fmt.Println("https://telegra.ph" + src)
	}
	return nil
}
