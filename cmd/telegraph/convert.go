package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	telegraph "github.com/go-telegraph/telegraph"
	"github.com/go-telegraph/telegraph/internal/fileutil"
)

// runConvert converts a local file between the three content
// representations without touching the network.
func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	var f convertFlags
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.from, "from", "", "input format: html, markdown, json (default: by extension)")
	fs.StringVarP(&f.to, "to", "t", "json", "output format: html, markdown, json")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.Usage = func() { printConvertUsage(os.Stderr) }
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

	from := f.from
	if from == "" {
		from, err = fileutil.FormatForFile(inputPath)
		if err != nil {
			return err
		}
	}

	nodes, err := nodesFromInput(content, from)
	if err != nil {
		return err
	}

	out, err := renderNodes(nodes, f.to)
	if err != nil {
		return err
	}

	if f.output == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(f.output, []byte(out+"\n"), 0o600); err != nil {
		return err
	}
	if !f.common.quiet {
		fmt.Printf("Created %s\n", f.output)
	}
	return nil
}

// nodesFromInput converts file content to a tree per the input format
// name ("json" inputs rely on the dispatcher's array sniff).
func nodesFromInput(content, format string) ([]telegraph.Node, error) {
	switch format {
	case "json", "html", "":
		return telegraph.Content(content, telegraph.FormatHTML)
	case "markdown", "md":
		return telegraph.Content(content, telegraph.FormatMarkdown)
	default:
		return nil, fmt.Errorf("%w: %q", telegraph.ErrInvalidFormat, format)
	}
}

// renderNodes serializes a tree per the output format name.
func renderNodes(nodes []telegraph.Node, format string) (string, error) {
	switch format {
	case "html":
		return telegraph.NodesToHTML(nodes), nil
	case "markdown", "md":
		return telegraph.NodesToMarkdown(nodes), nil
	case "json", "":
		data, err := telegraph.NodesToJSON(nodes)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %q", telegraph.ErrInvalidFormat, format)
	}
}
