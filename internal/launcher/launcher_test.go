package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRunMissingEntry(t *testing.T) {
	entry := filepath.Join(t.TempDir(), "bot.py")

	err := Run(context.Background(), Options{Entry: entry})
	if !errors.Is(err, ErrEntryMissing) {
		t.Fatalf("Run() error = %v, want ErrEntryMissing", err)
	}
}

func TestDetectApp(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "top-level assignment",
			content: "import nonebot\n\nnonebot.init()\n\napp = nonebot.get_asgi()\n",
			want:    true,
		},
		{
			name:    "assignment without spaces",
			content: "app=nonebot.get_asgi()\n",
			want:    true,
		},
		{
			name:    "indented assignment is not top-level",
			content: "def main():\n    app = nonebot.get_asgi()\n",
			want:    false,
		},
		{
			name:    "different attribute",
			content: "application = nonebot.get_asgi()\n",
			want:    false,
		},
		{
			name:    "no assignment",
			content: "import nonebot\n\nnonebot.init()\nnonebot.run()\n",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := filepath.Join(t.TempDir(), "bot.py")
			if err := os.WriteFile(entry, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := DetectApp(entry, "app")
			if err != nil {
				t.Fatalf("DetectApp() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectApp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectAppMissingFile(t *testing.T) {
	if _, err := DetectApp(filepath.Join(t.TempDir(), "bot.py"), "app"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
