package functional

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// aCleanArxEnvironment is a no-op because the Before hook already sets up
// the environment. This step exists so feature files read naturally.
func aCleanArxEnvironment(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

// iRun executes a command string with empty stdin, so any confirmation
// prompt reads EOF and declines.
func iRun(ctx context.Context, command string) (context.Context, error) {
	return runCommand(ctx, command, "")
}

// iRunAnswering executes a command string feeding the space-separated
// answers to stdin, one per prompt.
func iRunAnswering(ctx context.Context, command, answers string) (context.Context, error) {
	input := strings.Join(strings.Fields(answers), "\n") + "\n"
	return runCommand(ctx, command, input)
}

// runCommand executes a command string, replacing "arx" with the test
// binary path and putting the yay stub first on PATH.
func runCommand(ctx context.Context, command, stdin string) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}

	args := strings.Fields(command)
	if len(args) > 0 && args[0] == "arx" {
		args[0] = state.binPath
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = filepath.Dir(state.binPath)
	cmd.Env = append(scrubbedEnviron(),
		"ARX_HOME="+state.homeDir,
		"ARX_TEST_YAY_LOG="+state.yayLog,
		"PATH="+state.stubDir+string(os.PathListSeparator)+os.Getenv("PATH"),
	)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	state.stdout = stdout.String()
	state.stderr = stderr.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			state.exitCode = exitErr.ExitCode()
		} else {
			return ctx, fmt.Errorf("command execution failed: %w", err)
		}
	} else {
		state.exitCode = 0
	}

	return ctx, nil
}

func theExitCodeIs(ctx context.Context, expected int) error {
	state := getState(ctx)
	if state.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nstdout: %s\nstderr: %s",
			expected, state.exitCode, state.stdout, state.stderr)
	}
	return nil
}

func theExitCodeIsNot(ctx context.Context, notExpected int) error {
	state := getState(ctx)
	if state.exitCode == notExpected {
		return fmt.Errorf("expected exit code to not be %d\nstdout: %s\nstderr: %s",
			notExpected, state.stdout, state.stderr)
	}
	return nil
}

func theOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theOutputDoesNotContain(ctx context.Context, text string) error {
	state := getState(ctx)
	if strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout not to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theErrorOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stderr, text) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", text, state.stderr)
	}
	return nil
}

func theFileExists(ctx context.Context, path string) error {
	state := getState(ctx)
	fullPath := filepath.Join(state.homeDir, path)
	if _, err := os.Lstat(fullPath); os.IsNotExist(err) {
		return fmt.Errorf("expected file %q to exist", fullPath)
	}
	return nil
}

func theFileDoesNotExist(ctx context.Context, path string) error {
	state := getState(ctx)
	fullPath := filepath.Join(state.homeDir, path)
	if _, err := os.Lstat(fullPath); err == nil {
		return fmt.Errorf("expected file %q not to exist", fullPath)
	}
	return nil
}

// yayWasInvokedWith asserts that the stub recorded a delegated invocation
// with exactly the given arguments.
func yayWasInvokedWith(ctx context.Context, args string) error {
	state := getState(ctx)
	data, err := os.ReadFile(state.yayLog)
	if err != nil {
		return fmt.Errorf("yay was never invoked (no log): %v\nstdout: %s\nstderr: %s",
			err, state.stdout, state.stderr)
	}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == args {
			return nil
		}
	}
	return fmt.Errorf("expected yay invocation %q, got:\n%s", args, string(data))
}

func yayWasNotInvoked(ctx context.Context) error {
	state := getState(ctx)
	if _, err := os.Lstat(state.yayLog); err == nil {
		data, _ := os.ReadFile(state.yayLog)
		return fmt.Errorf("expected no yay delegation, but got:\n%s", string(data))
	}
	return nil
}
