package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOptions(t *testing.T) {
	path := writeConfig(t, "pretty = true\nline_width_scale = 2.5\n")

	opts, err := loadOptions(path)
	if err != nil {
		t.Fatalf("loadOptions: %v", err)
	}
	if !opts.PrettyPrint {
		t.Fatal("pretty not applied")
	}
	if opts.LineWidthScale != 2.5 {
		t.Fatalf("line width scale = %v, want 2.5", opts.LineWidthScale)
	}
}

func TestLoadOptionsPartial(t *testing.T) {
	path := writeConfig(t, "pretty = true\n")

	opts, err := loadOptions(path)
	if err != nil {
		t.Fatalf("loadOptions: %v", err)
	}
	if !opts.PrettyPrint {
		t.Fatal("pretty not applied")
	}
	if opts.LineWidthScale != 0 {
		t.Fatalf("line width scale = %v, want unset", opts.LineWidthScale)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := loadOptions(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestConfigureLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	cases := []struct {
		name string
		want logrus.Level
	}{
		{"quiet", logrus.WarnLevel},
		{"normal", logrus.InfoLevel},
		{"verbose", logrus.TraceLevel},
	}
	for _, c := range cases {
		if err := configureLogging(c.name); err != nil {
			t.Fatalf("configureLogging(%q): %v", c.name, err)
		}
		if got := logrus.GetLevel(); got != c.want {
			t.Fatalf("level for %q = %v, want %v", c.name, got, c.want)
		}
	}

	if err := configureLogging("chatty"); err == nil {
		t.Fatal("expected an error for an unknown verbosity")
	}
}
