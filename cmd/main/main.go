package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/CTAG07/shaderinline/pkg/inliner"
	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/natefinch/atomic"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// CLI is the command line parsed by kong. Flags left empty fall back to the
// config file, then to DefaultConfig.
type CLI struct {
	Fragments []string         `arg:"" optional:"" name:"fragment" help:"Shader files (.vert or .frag) to inline, in output order."`
	Template  string           `short:"t" help:"HTML template to read (default src/pages/index.html)."`
	Output    string           `short:"o" help:"Page to write (default site/index.html)."`
	Config    string           `short:"c" help:"Optional JSON config file."`
	LogLevel  string           `name:"log-level" help:"debug, info, warn or error (default warn)."`
	Version   kong.VersionFlag `help:"Show version information."`
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run builds the page once. Every failure is logged to stderr and returned;
// nothing is written unless rendering succeeded.
func run(args []string, stderr io.Writer) error {
	baseLogger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("shaderinline"),
		kong.Description("Inline shader sources into the site's index page."),
		kong.Vars{"version": fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate)},
		kong.Writers(stderr, stderr),
	)
	if err != nil {
		baseLogger.Error("Failed to build command line parser", "error", err)
		return err
	}
	if _, err = parser.Parse(args); err != nil {
		baseLogger.Error("Invalid arguments", "error", err)
		return err
	}

	config := DefaultConfig()
	if cli.Config != "" {
		if config, err = LoadConfig(cli.Config); err != nil {
			baseLogger.Error("Failed to load configuration", "path", cli.Config, "error", err)
			return err
		}
	}
	config.applyFlags(&cli)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: parseLogLevel(config.LogLevel)}))

	if err = build(logger, config, cli.Fragments); err != nil {
		logger.Error("Site build failed", "error", err)
		return err
	}
	return nil
}

// build renders the template and replaces the output file in one step.
func build(logger *slog.Logger, config *Config, fragments []string) error {
	in := inliner.New(logger, config.Inliner)

	logger.Debug("Rendering template", "template", config.TemplatePath, "fragments", fragments)
	page, err := in.Render(config.TemplatePath, fragments)
	if err != nil {
		return err
	}

	if err = atomic.WriteFile(config.OutputPath, bytes.NewReader([]byte(page))); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.OutputPath, err)
	}
	logger.Info("Wrote page", "path", config.OutputPath, "size", humanize.Bytes(uint64(len(page))), "fragments", len(fragments))
	return nil
}
