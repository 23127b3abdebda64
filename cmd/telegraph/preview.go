package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	flag "github.com/spf13/pflag"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/go-telegraph/telegraph/internal/assets"
	"github.com/go-telegraph/telegraph/internal/fileutil"
)

// previewTemplate wraps rendered content in a standalone HTML5 document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s
</body>
</html>`

// runPreview renders a Markdown draft to a local standalone HTML file so
// it can be checked in a browser before publishing. The preview uses a
// full Markdown renderer and is presentation only; what the service
// receives is defined by the conversion engine, not by this command.
func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	var f previewFlags
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: <input>.html)")
	fs.StringVar(&f.style, "style", assets.DefaultStyleName, "embedded stylesheet name")
	fs.Usage = func() { printPreviewUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return ErrMissingInput
	}

	inputPath := fs.Arg(0)
	content, err := fileutil.ReadString(inputPath)
	if err != nil {
		return err
	}
	css, err := assets.LoadStyle(f.style)
	if err != nil {
		return err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}

	title := strings.TrimSuffix(inputPath, ".md")
	doc := fmt.Sprintf(previewTemplate, title, css, buf.String())

	output := f.output
	if output == "" {
		output = strings.TrimSuffix(inputPath, ".md") + ".html"
	}
	if err := os.WriteFile(output, []byte(doc), 0o600); err != nil {
		return err
	}
	if !f.common.quiet {
		fmt.Printf("Created %s\n", output)
	}
	return nil
}
