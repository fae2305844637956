package compose

import (
	"reflect"
	"testing"
)

func TestParseGlobalArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOpts Options
		wantRest []string
		wantErr  bool
	}{
		{
			name:     "no flags",
			args:     []string{"up", "-d"},
			wantRest: []string{"up", "-d"},
		},
		{
			name:     "all flags before the command",
			args:     []string{"--verbose", "--no-ansi", "--log-level", "DEBUG", "up", "-d"},
			wantOpts: Options{Verbose: true, NoANSI: true, LogLevel: "DEBUG"},
			wantRest: []string{"up", "-d"},
		},
		{
			name:     "equals form",
			args:     []string{"--log-level=INFO", "build"},
			wantOpts: Options{LogLevel: "INFO"},
			wantRest: []string{"build"},
		},
		{
			name:     "flags after the command stay with it",
			args:     []string{"up", "--verbose"},
			wantRest: []string{"up", "--verbose"},
		},
		{
			name:    "log level without a value",
			args:    []string{"--log-level"},
			wantErr: true,
		},
		{
			name: "empty args",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, rest, err := ParseGlobalArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGlobalArgs() error: %v", err)
			}
			if opts != tt.wantOpts {
				t.Errorf("opts = %+v, want %+v", opts, tt.wantOpts)
			}
			if !reflect.DeepEqual(rest, tt.wantRest) {
				t.Errorf("rest = %v, want %v", rest, tt.wantRest)
			}
		})
	}
}

func TestArgv(t *testing.T) {
	opts := Options{Verbose: true, NoANSI: true, LogLevel: "DEBUG"}

	t.Run("classic", func(t *testing.T) {
		got := Argv(FlavorClassic, opts, "up", []string{"-d"})
		want := []string{"--verbose", "--no-ansi", "--log-level", "DEBUG", "up", "-d"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Argv() = %v, want %v", got, want)
		}
	})

	t.Run("plugin", func(t *testing.T) {
		got := Argv(FlavorPlugin, opts, "up", []string{"-d"})
		want := []string{"--debug", "--log-level", "debug", "compose", "--ansi", "never", "up", "-d"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Argv() = %v, want %v", got, want)
		}
	})

	t.Run("no options", func(t *testing.T) {
		got := Argv(FlavorClassic, Options{}, "down", nil)
		want := []string{"down"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Argv() = %v, want %v", got, want)
		}

		got = Argv(FlavorPlugin, Options{}, "build", nil)
		want = []string{"compose", "build"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Argv() = %v, want %v", got, want)
		}
	})
}
