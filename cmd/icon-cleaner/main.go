package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ironsheep/icon-cleaner/internal/extract"
	"github.com/ironsheep/icon-cleaner/internal/imaging"
	"github.com/ironsheep/icon-cleaner/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout carries MCP traffic and CLI output)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// run executes one CLI invocation. Per-input failures are reported on stdout
// next to the progress lines; usage and configuration errors go to stderr.
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	debug := strings.EqualFold(getenv("ICON_CLEANER_LOG_LEVEL"), "debug")
	if debug {
		log.Printf("icon-cleaner v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if len(args) == 0 {
		return serve()
	}

	switch args[0] {
	case "--version", "-v", "version":
		fmt.Fprintf(stdout, "icon-cleaner %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	case "--help", "-h", "help":
		usage(stdout)
		return 0
	case "serve":
		return serve()
	case "clean", "wave", "inspect":
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}

	preset := extract.Hands()
	if args[0] == "wave" {
		preset = extract.Wave()
	}
	cfg, err := preset.WithEnv(getenv)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	cfg.Verbose = debug

	inputs := args[1:]
	cache := imaging.NewImageCache()

	switch args[0] {
	case "clean":
		if len(inputs) == 0 {
			fmt.Fprintln(stderr, "clean: at least one input is required")
			return 2
		}
		return cleanAll(stdout, cache, inputs, cfg)
	case "wave":
		if len(inputs) != 2 {
			fmt.Fprintln(stderr, "wave: usage: icon-cleaner wave <input> <output>")
			return 2
		}
		if err := clean(stdout, cache, inputs[0], inputs[1], cfg); err != nil {
			fmt.Fprintf(stdout, "Error processing %s: %v\n", inputs[0], err)
			return 1
		}
		return 0
	default:
		if len(inputs) == 0 {
			fmt.Fprintln(stderr, "inspect: at least one input is required")
			return 2
		}
		return inspectAll(stdout, cache, inputs, cfg)
	}
}

// cleanAll processes every input even after a failure.
func cleanAll(stdout io.Writer, src extract.Source, inputs []string, cfg extract.Config) int {
	failed := 0
	for _, in := range inputs {
		if err := clean(stdout, src, in, "", cfg); err != nil {
			fmt.Fprintf(stdout, "Error processing %s: %v\n", in, err)
			failed++
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func clean(stdout io.Writer, src extract.Source, in, out string, cfg extract.Config) error {
	fmt.Fprintf(stdout, "Processing %s...\n", in)
	res, err := extract.ExtractFile(src, in, out, cfg)
	if err != nil {
		return err
	}
	if err := res.Report.WriteTable(stdout); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Saved to %s\n", res.OutputPath)
	return nil
}

func inspectAll(stdout io.Writer, src extract.Source, inputs []string, cfg extract.Config) int {
	failed := 0
	for _, in := range inputs {
		fmt.Fprintf(stdout, "%s:\n", in)
		report, err := extract.Inspect(src, in, cfg)
		if err == nil {
			err = report.WriteTable(stdout)
		}
		if err != nil {
			fmt.Fprintf(stdout, "Error processing %s: %v\n", in, err)
			failed++
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func serve() int {
	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Printf("Server error: %v", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "icon-cleaner - extract icon artwork onto a transparent background")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  icon-cleaner clean <input>...        Hands preset, writes <name>_clean.png")
	fmt.Fprintln(w, "  icon-cleaner wave <input> <output>   Wave preset, explicit output path")
	fmt.Fprintln(w, "  icon-cleaner inspect <input>...      Print the component table only")
	fmt.Fprintln(w, "  icon-cleaner serve                   MCP server on stdin/stdout (default)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  ICON_CLEANER_LOG_LEVEL=debug      Log every component decision")
	fmt.Fprintln(w, "  "+extract.EnvThreshold+"=<0-255>    Luminance threshold")
	fmt.Fprintln(w, "  "+extract.EnvNoiseFloor+"=<px>     Smallest kept component")
	fmt.Fprintln(w, "  "+extract.EnvFrameCoverage+"=<0-1> Frame coverage limit")
	fmt.Fprintln(w, "  "+extract.EnvDilate+"=<px>         Grow kept artwork")
	fmt.Fprintln(w, "  "+extract.EnvColor+"=<#hex>         Foreground colour")
	fmt.Fprintln(w, "  "+extract.EnvMode+"=components|threshold")
}
