package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	telegraph "github.com/go-telegraph/telegraph"
)

// runExport downloads every page of the account into a directory.
func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	var f exportFlags
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.token, "token", "", "access token (overrides config)")
	fs.StringVarP(&f.dir, "dir", "d", "", "output directory (default: export)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html, markdown, json (default: html)")
	fs.IntVar(&f.pageSize, "page-size", 0, "pages fetched per list request (1-200)")
	fs.Usage = func() { printExportUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(f.common)
	if err != nil {
		return err
	}
	token := pickString(f.token, cfg.Account.AccessToken)
	if token == "" {
		return ErrMissingToken
	}

	dir := pickString(f.dir, cfg.Export.Dir, "export")
	format := telegraph.ExportFormat(pickString(f.format, cfg.Export.Format, string(telegraph.ExportHTML)))
	pageSize := f.pageSize
	if pageSize == 0 {
		pageSize = cfg.Export.PageSize
	}

	opts := []telegraph.ExporterOption{telegraph.WithExportFormat(format)}
	if pageSize > 0 {
		opts = append(opts, telegraph.WithPageSize(pageSize))
	}

	exporter := telegraph.NewExporter(telegraph.NewClient(token), opts...)
	result, err := exporter.ExportAll(ctx, dir)
	if err != nil {
		return err
	}

	if f.common.verbose {
		for _, file := range result.Files {
			fmt.Fprintln(os.Stderr, file)
		}
	}
	if !f.common.quiet {
		fmt.Printf("Exported %d pages to %s\n", result.Exported, dir)
	}
	return nil
}
