// Package gate orchestrates the confirm-before-install workflow: extract
// package names from the argument vector, verify each exists, fetch and
// classify its PKGBUILD, report, confirm with the user, then delegate to
// the real AUR helper with not-found packages filtered out.
package gate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arx-sec/arx/internal/analyze"
	"github.com/arx-sec/arx/internal/aur"
	"github.com/arx-sec/arx/internal/log"
	"github.com/arx-sec/arx/internal/namecheck"
	"github.com/arx-sec/arx/internal/recipe"
)

// Options configures the Controller. Helper, Fetcher, and Classifier are
// required; everything else has a sensible default.
type Options struct {
	Helper     *aur.Helper
	Fetcher    *recipe.Fetcher
	Classifier *analyze.Classifier

	// CheckName runs the name heuristics. Default: namecheck.Check.
	CheckName func(string) string

	// Confirm asks the user to proceed. Default reads from stdin.
	Confirm ConfirmFunc

	// Out receives user-facing output. Default: os.Stdout.
	Out io.Writer

	// Renderer formats reports. Default: plain (no color).
	Renderer *Renderer

	// Logger for diagnostics. If nil, uses log.Default().
	Logger log.Logger
}

// Controller runs the gate workflow for one invocation.
type Controller struct {
	helper     *aur.Helper
	fetcher    *recipe.Fetcher
	classifier *analyze.Classifier
	checkName  func(string) string
	confirm    ConfirmFunc
	out        io.Writer
	render     *Renderer
	logger     log.Logger
}

// New creates a Controller.
func New(opts Options) *Controller {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	confirm := opts.Confirm
	if confirm == nil {
		confirm = NewStdinConfirm(os.Stdin, out)
	}

	checkName := opts.CheckName
	if checkName == nil {
		checkName = namecheck.Check
	}

	render := opts.Renderer
	if render == nil {
		render = NewRenderer(false)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Controller{
		helper:     opts.Helper,
		fetcher:    opts.Fetcher,
		classifier: opts.Classifier,
		checkName:  checkName,
		confirm:    confirm,
		out:        out,
		render:     render,
		logger:     logger,
	}
}

// report pairs a package with its completed verdict.
type report struct {
	name    string
	verdict analyze.Verdict
}

// Run executes the gate for one argument vector and returns the process
// exit code: the delegated helper's own code after approval, or 1 on
// decline, interruption, or when nothing could be analyzed.
func (c *Controller) Run(ctx context.Context, args []string) int {
	packages := aur.ExtractPackages(args)
	if len(packages) == 0 {
		fmt.Fprintln(c.out, "No packages to install detected. Running yay directly...")
		c.logger.Info("no install targets; delegating unchanged", "args", strings.Join(args, " "))
		return c.helper.Run(args)
	}

	fmt.Fprintf(c.out, "Packages to install: %s\n", strings.Join(packages, ", "))

	var analyzed []report
	var notFound []string

	for _, pkg := range packages {
		if ctx.Err() != nil {
			return c.interrupted()
		}

		fmt.Fprintf(c.out, "\nAnalyzing %s...\n", pkg)

		if !c.helper.Exists(ctx, pkg) {
			fmt.Fprintf(c.out, "Package '%s' not found in AUR or official repositories\n", pkg)
			notFound = append(notFound, pkg)
			continue
		}

		pkgbuild, err := c.fetcher.Fetch(ctx, pkg)
		if err != nil {
			if errors.Is(err, recipe.ErrUnavailable) {
				fmt.Fprintf(c.out, "Could not retrieve PKGBUILD for '%s' - skipping analysis\n", pkg)
				notFound = append(notFound, pkg)
				continue
			}
			if ctx.Err() != nil {
				return c.interrupted()
			}
			c.logger.Error("fetch failed", "package", pkg, "error", err)
			fmt.Fprintf(c.out, "Error: %v\n", err)
			return 1
		}

		verdict := c.classifier.Analyze(ctx, pkg, pkgbuild)
		verdict.NameFindings = c.checkName(pkg)
		analyzed = append(analyzed, report{name: pkg, verdict: verdict})

		c.render.Package(c.out, pkg, verdict)
	}

	if ctx.Err() != nil {
		return c.interrupted()
	}

	if len(notFound) > 0 {
		c.render.NotFound(c.out, notFound)
	}

	if len(analyzed) == 0 {
		fmt.Fprintln(c.out, "No valid packages to install. Exiting.")
		return 1
	}

	if len(notFound) > 0 {
		fmt.Fprintf(c.out, "\nOnly %d out of %d packages were found and analyzed.\n",
			len(analyzed), len(packages))
	}
	answer, ok := c.ask(ctx, "Do you want to continue with the installation?")
	if !ok {
		return c.interrupted()
	}
	if !answer {
		fmt.Fprintln(c.out, "Installation cancelled by user.")
		return 1
	}

	verdicts := make([]analyze.Verdict, len(analyzed))
	for i, r := range analyzed {
		verdicts[i] = r.verdict
	}
	malicious, confidence := analyze.Aggregate(verdicts)
	c.render.Overall(c.out, malicious, confidence)

	answer, ok = c.ask(ctx, "Proceed with installation?")
	if !ok {
		return c.interrupted()
	}
	if !answer {
		fmt.Fprintln(c.out, "Installation cancelled by user.")
		return 1
	}

	filtered := aur.FilterArgs(args, notFound)
	fmt.Fprintln(c.out, "Proceeding with installation...")
	c.logger.Info("delegating to yay", "args", strings.Join(filtered, " "))
	return c.helper.Run(filtered)
}

// ask runs the confirmation in a goroutine so an interrupt arriving while
// the prompt blocks on stdin still cancels the run promptly. ok is false
// when the context was cancelled before an answer arrived.
func (c *Controller) ask(ctx context.Context, prompt string) (answer, ok bool) {
	ch := make(chan bool, 1)
	go func() { ch <- c.confirm(prompt) }()

	select {
	case <-ctx.Done():
		return false, false
	case v := <-ch:
		return v, true
	}
}

func (c *Controller) interrupted() int {
	fmt.Fprintln(c.out, "\nOperation cancelled.")
	return 1
}
