// Package aur is the process boundary to the wrapped AUR helper (yay).
// It locates the helper binary, answers package existence queries, and
// performs the final delegated invocation with the user's argument vector.
package aur

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/arx-sec/arx/internal/config"
	"github.com/arx-sec/arx/internal/log"
)

// ErrHelperNotFound indicates the AUR helper binary could not be located.
var ErrHelperNotFound = errors.New("yay not found: install yay first")

// helperCandidates are the locations probed for the helper binary, in order.
var helperCandidates = []string{"yay", "/usr/bin/yay", "/usr/local/bin/yay"}

// Options configures the Helper.
type Options struct {
	// Path is the helper binary. If empty, the binary is located by
	// probing PATH and the common install locations.
	Path string

	// SearchTimeout bounds existence checks. Default: config.DefaultSearchTimeout.
	SearchTimeout time.Duration

	// Logger for diagnostics. If nil, uses log.Default().
	Logger log.Logger
}

// Helper wraps the yay binary.
type Helper struct {
	path          string
	searchTimeout time.Duration
	logger        log.Logger
}

// NewHelper locates yay and returns a Helper with default options.
// Returns ErrHelperNotFound if the binary cannot be located.
func NewHelper() (*Helper, error) {
	return NewHelperWithOptions(Options{})
}

// NewHelperWithOptions creates a Helper with explicit options.
func NewHelperWithOptions(opts Options) (*Helper, error) {
	path := opts.Path
	if path == "" {
		found, err := findHelper()
		if err != nil {
			return nil, err
		}
		path = found
	}

	timeout := opts.SearchTimeout
	if timeout == 0 {
		timeout = config.DefaultSearchTimeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Helper{
		path:          path,
		searchTimeout: timeout,
		logger:        logger,
	}, nil
}

func findHelper() (string, error) {
	for _, candidate := range helperCandidates {
		if resolved, err := exec.LookPath(candidate); err == nil {
			return resolved, nil
		}
	}
	return "", ErrHelperNotFound
}

// Path returns the resolved helper binary path.
func (h *Helper) Path() string {
	return h.path
}

// Command returns an exec.Cmd for the helper with the given arguments,
// bound to ctx. Callers set Dir and output capture as needed.
func (h *Helper) Command(ctx context.Context, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, h.path, args...)
}

// Exists reports whether a package resolves to at least one search result.
// The query runs under the configured search timeout; a timeout or a failed
// invocation counts as "does not exist".
func (h *Helper) Exists(ctx context.Context, name string) bool {
	ctx, cancel := context.WithTimeout(ctx, h.searchTimeout)
	defer cancel()

	cmd := h.Command(ctx, "-Ss", name)
	output, err := cmd.Output()
	if err != nil {
		h.logger.Debug("existence check failed", "package", name, "error", err)
		return false
	}

	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}

// Run invokes the helper with the given arguments, inheriting the caller's
// stdio, and returns the helper's exit code. Returns 1 if the helper could
// not be started.
func (h *Helper) Run(args []string) int {
	cmd := exec.Command(h.path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		h.logger.Error("failed to run yay", "error", err)
		return 1
	}
	return 0
}
