package compose

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Options carries the external tool's global flags. They are passed into
// each invocation explicitly instead of mutating any process-wide state.
type Options struct {
	Verbose  bool
	NoANSI   bool
	LogLevel string // DEBUG, INFO, WARNING, ERROR, CRITICAL
}

// Flavor identifies which compose front-end grammar to target.
type Flavor int

const (
	// FlavorClassic is the standalone docker-compose binary.
	FlavorClassic Flavor = iota
	// FlavorPlugin is the compose plugin invoked as `docker compose`.
	FlavorPlugin
)

// ParseGlobalArgs consumes the tool's global flags from the front of args,
// mirroring its options-first grammar, and returns the remaining arguments.
func ParseGlobalArgs(args []string) (Options, []string, error) {
	var opts Options

	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "--verbose":
			opts.Verbose = true
		case arg == "--no-ansi":
			opts.NoANSI = true
		case arg == "--log-level":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--log-level requires a value")
			}
			i++
			opts.LogLevel = args[i]
		case strings.HasPrefix(arg, "--log-level="):
			opts.LogLevel = strings.TrimPrefix(arg, "--log-level=")
		default:
			// First positional ends global flag parsing.
			return opts, args[i:], nil
		}
		i++
	}

	return opts, nil, nil
}

// Argv builds the full argument vector (after the binary name) for the
// given flavor, command, and command arguments.
func Argv(fl Flavor, opts Options, command string, args []string) []string {
	var argv []string

	switch fl {
	case FlavorClassic:
		if opts.Verbose {
			argv = append(argv, "--verbose")
		}
		if opts.NoANSI {
			argv = append(argv, "--no-ansi")
		}
		if opts.LogLevel != "" {
			argv = append(argv, "--log-level", opts.LogLevel)
		}
	case FlavorPlugin:
		// Global docker flags come before the compose subcommand.
		if opts.Verbose {
			argv = append(argv, "--debug")
		}
		if opts.LogLevel != "" {
			argv = append(argv, "--log-level", strings.ToLower(opts.LogLevel))
		}
		argv = append(argv, "compose")
		if opts.NoANSI {
			argv = append(argv, "--ansi", "never")
		}
	}

	argv = append(argv, command)
	argv = append(argv, args...)
	return argv
}

// resolveTool locates a compose front-end, preferring the standalone
// binary whose grammar the proxy flags mirror directly.
func resolveTool() (string, Flavor, error) {
	if bin, err := exec.LookPath("docker-compose"); err == nil {
		return bin, FlavorClassic, nil
	}
	if bin, err := exec.LookPath("docker"); err == nil {
		return bin, FlavorPlugin, nil
	}
	return "", 0, fmt.Errorf("docker-compose not found: install Docker Compose first")
}

// Invoke runs the compose tool with the given command and arguments and
// returns its exit status unmodified. The tool's own output streams to the
// provided writers.
func Invoke(ctx context.Context, opts Options, command string, args []string, stdout, stderr io.Writer) (int, error) {
	bin, fl, err := resolveTool()
	if err != nil {
		return -1, err
	}

	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cmd := exec.CommandContext(ctx, bin, Argv(fl, opts, command, args)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("running compose: %w", err)
	}
	return 0, nil
}

// Build runs `build` with no extra arguments.
func Build(ctx context.Context, opts Options, stdout, stderr io.Writer) (int, error) {
	return Invoke(ctx, opts, "build", nil, stdout, stderr)
}

// Deploy runs `up -d`.
func Deploy(ctx context.Context, opts Options, stdout, stderr io.Writer) (int, error) {
	return Invoke(ctx, opts, "up", []string{"-d"}, stdout, stderr)
}

// Stop runs `down`.
func Stop(ctx context.Context, opts Options, stdout, stderr io.Writer) (int, error) {
	return Invoke(ctx, opts, "down", nil, stdout, stderr)
}
