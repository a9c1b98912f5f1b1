// Package recipe retrieves PKGBUILD build recipes for inspection.
//
// Each fetch runs `yay --getpkgbuild` inside a uniquely named scratch
// directory that is removed on every exit path, so concurrent or repeated
// fetches never observe each other's files and nothing outlives the call.
package recipe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arx-sec/arx/internal/aur"
	"github.com/arx-sec/arx/internal/config"
	"github.com/arx-sec/arx/internal/log"
)

// ErrUnavailable indicates the PKGBUILD could not be retrieved: the helper
// reported the package as missing, the fetch timed out, or the fetched tree
// contained no PKGBUILD. Callers treat this as "skip the package", not as a
// batch-fatal error.
var ErrUnavailable = errors.New("PKGBUILD unavailable")

// notFoundMarkers are stderr fragments that mean the package does not exist.
var notFoundMarkers = []string{"not found", "no results", "no packages"}

// Options configures the Fetcher.
type Options struct {
	// TempRoot is the scratch directory root. If empty, a per-process
	// subdirectory of the system temp directory is used.
	TempRoot string

	// Timeout bounds each fetch. Default: config.DefaultFetchTimeout.
	Timeout time.Duration

	// Logger for diagnostics. If nil, uses log.Default().
	Logger log.Logger
}

// Fetcher retrieves PKGBUILD contents via the AUR helper.
type Fetcher struct {
	helper   *aur.Helper
	tempRoot string
	timeout  time.Duration
	logger   log.Logger
}

// NewFetcher creates a Fetcher with default options.
func NewFetcher(helper *aur.Helper) *Fetcher {
	return NewFetcherWithOptions(helper, Options{})
}

// NewFetcherWithOptions creates a Fetcher with explicit options.
func NewFetcherWithOptions(helper *aur.Helper, opts Options) *Fetcher {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = config.DefaultFetchTimeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Fetcher{
		helper:   helper,
		tempRoot: opts.TempRoot,
		timeout:  timeout,
		logger:   logger,
	}
}

// Fetch retrieves the PKGBUILD for a package and returns its full text.
// Returns ErrUnavailable when the package or its PKGBUILD cannot be found;
// any other error means the scratch directory could not be prepared.
func (f *Fetcher) Fetch(ctx context.Context, name string) (string, error) {
	dir, err := f.scratchDir(name)
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer f.cleanup(dir)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	cmd := f.helper.Command(ctx, "--getpkgbuild", name)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			f.logger.Warn("timed out fetching PKGBUILD", "package", name, "timeout", f.timeout)
			return "", ErrUnavailable
		}
		if isNotFound(stderr.String()) {
			return "", ErrUnavailable
		}
		f.logger.Warn("yay --getpkgbuild failed", "package", name,
			"stderr", strings.TrimSpace(stderr.String()))
		return "", ErrUnavailable
	}

	pkgbuildPath := filepath.Join(dir, name, "PKGBUILD")
	data, err := os.ReadFile(pkgbuildPath)
	if err != nil {
		f.logger.Warn("PKGBUILD not present in fetched tree", "package", name, "path", pkgbuildPath)
		return "", ErrUnavailable
	}

	return string(data), nil
}

// scratchDir creates a uniquely named directory for one package's fetch.
func (f *Fetcher) scratchDir(name string) (string, error) {
	root := f.tempRoot
	if root == "" {
		root = filepath.Join(os.TempDir(), "arx")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", err
	}
	return os.MkdirTemp(root, "arx-"+name+"-")
}

// cleanup removes a scratch directory. Removal failures are logged, never
// fatal. The shared root is removed too once it is empty.
func (f *Fetcher) cleanup(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		f.logger.Warn("could not remove scratch directory", "dir", dir, "error", err)
		return
	}
	f.logger.Debug("removed scratch directory", "dir", dir)

	// Best effort: drop the shared root when nothing else is using it.
	_ = os.Remove(filepath.Dir(dir))
}

func isNotFound(stderr string) bool {
	lower := strings.ToLower(stderr)
	for _, marker := range notFoundMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
