package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arx-sec/arx/internal/analyze"
	"github.com/arx-sec/arx/internal/aur"
	"github.com/arx-sec/arx/internal/config"
	"github.com/arx-sec/arx/internal/gate"
	"github.com/arx-sec/arx/internal/llm"
	"github.com/arx-sec/arx/internal/log"
	"github.com/arx-sec/arx/internal/recipe"
	"github.com/arx-sec/arx/internal/userconfig"
)

// Version is the current version of arx
var Version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "arx [yay arguments]",
	Short: "A safety gate in front of the yay AUR helper",
	Long: `arx analyzes AUR packages before yay installs them. It fetches each
package's PKGBUILD, classifies it for malicious intent, checks the
package name for typosquatting patterns, and asks for confirmation
before delegating the unchanged argument vector to yay.`,
	// The whole argument vector belongs to yay. arx must never consume,
	// reorder, or reinterpret its flags, so cobra flag parsing is off and
	// routing happens on the leading token only.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	Run: func(cmd *cobra.Command, args []string) {
		exitWithCode(dispatch(cmd.Context(), args))
	},
}

// dispatch routes the raw argument vector. Only a leading literal token
// selects an arx subcommand; everything else is a yay invocation.
func dispatch(ctx context.Context, args []string) int {
	if len(args) == 0 {
		printUsage(os.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage(os.Stdout)
		return ExitSuccess
	case "version":
		fmt.Printf("arx version %s\n", Version)
		return ExitSuccess
	case "config":
		return runConfig(ctx, args[1:])
	}

	return runGate(ctx, args)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `arx - a safety gate in front of the yay AUR helper

Usage:
  arx <yay arguments>       analyze the named packages, confirm, then run yay
  arx config get|set|path   manage configuration
  arx version               print the arx version
  arx help                  show this help

The argument vector after analysis is handed to yay unchanged, minus any
packages that could not be found. Examples:

  arx -S firefox
  arx -S google-chrome visual-studio-code-bin
  arx -Syu

PKGBUILD analysis requires an API key in ANTHROPIC_API_KEY, or
GOOGLE_API_KEY / GEMINI_API_KEY for the Gemini fallback. Without one,
arx still checks package names and prompts before installing.

Environment:
  ARX_HOME            state directory (default ~/.arx)
  ARX_TEMP_DIR        scratch directory root for PKGBUILD fetches
  ARX_SEARCH_TIMEOUT  existence check timeout (default 30s)
  ARX_FETCH_TIMEOUT   PKGBUILD fetch timeout (default 60s)
`)
}

// determineLogLevel maps the user config to a slog level: verbose runs at
// INFO, quiet runs at WARN so genuine problems still surface.
func determineLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

// runGate wires the pipeline together and runs the gate for one argument
// vector. The returned code becomes the process exit code.
func runGate(ctx context.Context, args []string) int {
	cfg, err := config.DefaultConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitGeneral
	}
	if err := cfg.EnsureHome(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	userCfg, err := userconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		userCfg = userconfig.DefaultConfig()
	}

	logger := log.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: determineLogLevel(userCfg.Verbose),
	}))
	log.SetDefault(logger)

	helper, err := aur.NewHelperWithOptions(aur.Options{
		SearchTimeout: cfg.SearchTimeout,
		Logger:        logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitGeneral
	}

	fetcher := recipe.NewFetcherWithOptions(helper, recipe.Options{
		TempRoot: cfg.TempRoot,
		Timeout:  cfg.FetchTimeout,
		Logger:   logger,
	})

	// Missing credentials degrade the classifier rather than abort: the
	// gate still verifies existence, checks names, and prompts.
	var factory *llm.Factory
	factory, err = llm.NewFactory(ctx)
	if err != nil {
		if !errors.Is(err, llm.ErrNoCredentials) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		logger.Warn("PKGBUILD analysis disabled", "reason", err)
		factory = nil
	}
	classifier := analyze.NewClassifierWithOptions(factory, analyze.Options{
		Logger: logger,
	})

	controller := gate.New(gate.Options{
		Helper:     helper,
		Fetcher:    fetcher,
		Classifier: classifier,
		Renderer:   gate.NewRenderer(term.IsTerminal(int(os.Stdout.Fd()))),
		Logger:     logger,
	})

	return controller.Run(ctx, args)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitWithCode(ExitGeneral)
	}
}
