package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/nonebot-go/nb/internal/branding"
	"github.com/nonebot-go/nb/internal/style"
)

// ErrEntryMissing is returned when the entry file does not exist. No
// process is started in that case.
var ErrEntryMissing = errors.New("entry file not found")

// Options configures one bot launch.
type Options struct {
	Entry  string // entry file, e.g., "bot.py"
	App    string // ASGI attribute name, e.g., "app"
	AppRef string // explicit <module>:<attr> reference; skips detection
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the bot's service loop and blocks until it exits or the
// context is cancelled.
//
// When an ASGI app reference is configured or detected in the entry file,
// the loop runs under the ASGI server with hot-reload enabled. Otherwise a
// plain interpreter run is started and a warning explains how to enable
// reload. Signal handling is left to the underlying run loop.
func Run(ctx context.Context, opts Options) error {
	if opts.Entry == "" {
		opts.Entry = branding.EntryFile()
	}
	if opts.App == "" {
		opts.App = branding.ASGIAttr()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if _, err := os.Stat(opts.Entry); err != nil {
		return fmt.Errorf("%s: %w", opts.Entry, ErrEntryMissing)
	}

	python, err := lookPython()
	if err != nil {
		return err
	}

	appRef := opts.AppRef
	if appRef == "" {
		found, detectErr := DetectApp(opts.Entry, opts.App)
		if detectErr != nil {
			return detectErr
		}
		if found {
			module := strings.TrimSuffix(opts.Entry, ".py")
			appRef = module + ":" + opts.App
		}
	}

	var cmd *exec.Cmd
	if appRef != "" {
		cmd = exec.CommandContext(ctx, python, "-m", "uvicorn", appRef, "--reload")
	} else {
		style.Warnf(opts.Stderr,
			"Cannot find an asgi server. Add `%s = nonebot.get_asgi()` to enable reload mode.", opts.App)
		cmd = exec.CommandContext(ctx, python, opts.Entry)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", opts.Entry, err)
	}
	return nil
}

// DetectApp reports whether the entry file assigns the named attribute at
// the top level (e.g., `app = nonebot.get_asgi()`).
func DetectApp(path, attr string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	assign := regexp.MustCompile(`^` + regexp.QuoteMeta(attr) + `\s*=`)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if assign.MatchString(scanner.Text()) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("scanning %s: %w", path, err)
	}
	return false, nil
}

func lookPython() (string, error) {
	for _, candidate := range []string{"python3", "python"} {
		if bin, err := exec.LookPath(candidate); err == nil {
			return bin, nil
		}
	}
	return "", fmt.Errorf("python not found: install Python to run the bot")
}
