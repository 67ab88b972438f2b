package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty stays empty", input: "", want: ""},
		{name: "tilde prefix", input: "~/data/cofre.db", want: filepath.Join(home, "data/cofre.db")},
		{name: "bare tilde", input: "~", want: home},
		{name: "plain path untouched", input: "/var/lib/cofre.db", want: "/var/lib/cofre.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandPath_EnvVar(t *testing.T) {
	t.Setenv("COFRE_TEST_DIR", "/tmp/cofre-test")

	got := ExpandPath("$COFRE_TEST_DIR/db")
	if got != "/tmp/cofre-test/db" {
		t.Errorf("got %q, want %q", got, "/tmp/cofre-test/db")
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	got := DefaultDatabasePath()
	if got == "" {
		t.Fatal("expected non-empty default path")
	}
	if filepath.Base(got) != "cofre.db" {
		t.Errorf("default path %q should end in cofre.db", got)
	}
}
