package registry

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/nonebot-go/nb/internal/branding"
	"github.com/nonebot-go/nb/internal/patcher"
	"github.com/nonebot-go/nb/internal/style"
)

// Installer runs the package manager's install path for one package and
// reports its exit status.
type Installer interface {
	Install(ctx context.Context, pkg, index string) (exitCode int, err error)
}

// PipInstaller installs packages by shelling out to pip.
type PipInstaller struct {
	// Stdout and Stderr default to os.Stdout/os.Stderr when nil.
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs `pip install -i <index> <pkg>`, streaming the installer's
// own output, and returns its exit status.
func (p *PipInstaller) Install(ctx context.Context, pkg, index string) (int, error) {
	bin, args, err := pipCommand()
	if err != nil {
		return -1, err
	}
	args = append(args, "install", "-i", index, pkg)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = p.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = p.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err = cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("running pip: %w", err)
	}
	return 0, nil
}

// pipCommand locates a pip executable, falling back to `python -m pip`.
func pipCommand() (string, []string, error) {
	for _, candidate := range []string{"pip3", "pip"} {
		if bin, err := exec.LookPath(candidate); err == nil {
			return bin, nil, nil
		}
	}
	for _, candidate := range []string{"python3", "python"} {
		if bin, err := exec.LookPath(candidate); err == nil {
			return bin, []string{"-m", "pip"}, nil
		}
	}
	return "", nil, fmt.Errorf("pip not found: install Python and pip first")
}

// InstallOptions parameterizes InstallPlugin.
type InstallOptions struct {
	Suffix    string // plugin name without the index prefix
	EntryFile string // bot entry file to patch on success
	Index     string // package index URL
	Out       io.Writer
}

// InstallPlugin installs the qualified plugin package and, on success,
// patches the entry file with a load statement.
//
// A nonzero installer status is a visible failure and leaves every file
// untouched. A successful install with no entry file present reports the
// missing file and skips the patch.
func InstallPlugin(ctx context.Context, installer Installer, opts InstallOptions) error {
	qualified := branding.QualifyPlugin(opts.Suffix)

	code, err := installer.Install(ctx, qualified, opts.Index)
	if err != nil {
		return fmt.Errorf("installing %s: %w", qualified, err)
	}
	if code != 0 {
		return fmt.Errorf("installing %s: installer exited with status %d", qualified, code)
	}

	if _, err := os.Stat(opts.EntryFile); err != nil {
		style.Errorf(opts.Out, "Cannot find %s in current folder!", opts.EntryFile)
		return nil
	}

	statement := fmt.Sprintf("nonebot.load_plugin(%q)", qualified)
	if err := patcher.InsertLoadStatement(opts.EntryFile, statement); err != nil {
		return fmt.Errorf("enabling %s in %s: %w", qualified, opts.EntryFile, err)
	}

	fmt.Fprintf(opts.Out, "Installed %s and enabled it in %s.\n", qualified, opts.EntryFile)
	return nil
}
