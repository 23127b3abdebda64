package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "telegraph:", err)
	}
	os.Exit(exitCodeFor(err))
}

// run dispatches to a subcommand.
func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return errUsageShown
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "convert":
		return runConvert(rest)
	case "publish":
		return runPublish(ctx, rest)
	case "export":
		return runExport(ctx, rest)
	case "preview":
		return runPreview(rest)
	case "upload":
		return runUpload(ctx, rest)
	case "version":
		fmt.Println("telegraph", Version)
		return nil
	case "help":
		return runHelp(rest)
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// runHelp shows usage for a specific command.
func runHelp(args []string) error {
	if len(args) == 0 {
		printUsage(os.Stdout)
		return nil
	}
	switch args[0] {
	case "convert":
		printConvertUsage(os.Stdout)
	case "publish":
		printPublishUsage(os.Stdout)
	case "export":
		printExportUsage(os.Stdout)
	case "preview":
		printPreviewUsage(os.Stdout)
	case "upload":
		printUploadUsage(os.Stdout)
	default:
		printUsage(os.Stdout)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	return nil
}
