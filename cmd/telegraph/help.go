package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert a file between html, markdown, and node JSON")
	fmt.Fprintln(w, "  publish    Create or edit a page from a local file")
	fmt.Fprintln(w, "  export     Download every page of the account")
	fmt.Fprintln(w, "  preview    Render a Markdown draft to standalone HTML")
	fmt.Fprintln(w, "  upload     Upload image/video files, print hosted URLs")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'telegraph help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a local file between content representations. No network access.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --from <s>      Input format: html, markdown, json (default: by extension)")
	fmt.Fprintln(w, "  -t, --to <s>        Output format: html, markdown, json (default: json)")
	fmt.Fprintln(w, "  -o, --output <path> Output file (default: stdout)")
}

// printPublishUsage prints usage for the publish command.
func printPublishUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph publish <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create a page from a local html/markdown file and print its URL.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --token <s>       Access token (overrides config)")
	fmt.Fprintln(w, "      --title <s>       Page title (default: file name)")
	fmt.Fprintln(w, "      --author-name <s> Author name shown below the title")
	fmt.Fprintln(w, "      --author-url <s>  Link opened on author name tap")
	fmt.Fprintln(w, "      --format <s>      Content format: html, markdown (default: by extension)")
	fmt.Fprintln(w, "      --edit <path>     Edit the page at this path instead of creating one")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph export [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Download every page of the account, one file per page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --token <s>     Access token (overrides config)")
	fmt.Fprintln(w, "  -d, --dir <path>    Output directory (default: export)")
	fmt.Fprintln(w, "  -f, --format <s>    Output format: html, markdown, json (default: html)")
	fmt.Fprintln(w, "      --page-size <n> Pages fetched per list request (1-200)")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph preview <input.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a Markdown draft to a standalone HTML file for a browser check.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path> Output HTML file (default: <input>.html)")
	fmt.Fprintln(w, "      --style <s>     Embedded stylesheet name")
}

// printUploadUsage prints usage for the upload command.
func printUploadUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph upload <file>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Upload jpg/jpeg/png/gif/mp4 files and print their hosted URLs.")
}
