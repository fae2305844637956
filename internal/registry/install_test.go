package registry

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeInstaller struct {
	code int

	pkg   string
	index string
}

func (f *fakeInstaller) Install(_ context.Context, pkg, index string) (int, error) {
	f.pkg = pkg
	f.index = index
	return f.code, nil
}

const installEntry = `import nonebot

nonebot.init()

app = nonebot.get_asgi()
`

func TestInstallPlugin(t *testing.T) {
	t.Run("success patches the entry file", func(t *testing.T) {
		entry := filepath.Join(t.TempDir(), "bot.py")
		if err := os.WriteFile(entry, []byte(installEntry), 0o644); err != nil {
			t.Fatal(err)
		}

		installer := &fakeInstaller{}
		var out bytes.Buffer
		err := InstallPlugin(context.Background(), installer, InstallOptions{
			Suffix:    "weather",
			EntryFile: entry,
			Index:     "https://pypi.org/pypi",
			Out:       &out,
		})
		if err != nil {
			t.Fatalf("InstallPlugin() error: %v", err)
		}

		if installer.pkg != "nonebot_plugin_weather" {
			t.Errorf("installed package = %q", installer.pkg)
		}
		if installer.index != "https://pypi.org/pypi" {
			t.Errorf("index = %q", installer.index)
		}

		data, err := os.ReadFile(entry)
		if err != nil {
			t.Fatal(err)
		}
		want := `import nonebot

nonebot.init()
nonebot.load_plugin("nonebot_plugin_weather")

app = nonebot.get_asgi()
`
		if string(data) != want {
			t.Errorf("entry file = %q, want %q", data, want)
		}
		if !strings.Contains(out.String(), "Installed nonebot_plugin_weather") {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("missing entry file reports and skips the patch", func(t *testing.T) {
		entry := filepath.Join(t.TempDir(), "bot.py")

		var out bytes.Buffer
		err := InstallPlugin(context.Background(), &fakeInstaller{}, InstallOptions{
			Suffix:    "weather",
			EntryFile: entry,
			Out:       &out,
		})
		if err != nil {
			t.Fatalf("InstallPlugin() error: %v", err)
		}
		if !strings.Contains(out.String(), "Cannot find "+entry) {
			t.Errorf("output = %q", out.String())
		}
		if _, statErr := os.Stat(entry); statErr == nil {
			t.Error("entry file was created")
		}
	})

	t.Run("nonzero installer status fails and leaves the file alone", func(t *testing.T) {
		entry := filepath.Join(t.TempDir(), "bot.py")
		if err := os.WriteFile(entry, []byte(installEntry), 0o644); err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		err := InstallPlugin(context.Background(), &fakeInstaller{code: 1}, InstallOptions{
			Suffix:    "weather",
			EntryFile: entry,
			Out:       &out,
		})
		if err == nil || !strings.Contains(err.Error(), "exited with status 1") {
			t.Fatalf("error = %v, want exit status failure", err)
		}

		data, err := os.ReadFile(entry)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != installEntry {
			t.Errorf("entry file changed: %q", data)
		}
	})
}
