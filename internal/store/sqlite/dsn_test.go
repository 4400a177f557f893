package sqlite

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "memory", input: "sqlite://:memory:", expected: ":memory:"},
		{name: "absolute path", input: "sqlite:///var/lib/dex.db", expected: "/var/lib/dex.db"},
		{name: "explicit relative", input: "sqlite://./dex.db", expected: "./dex.db"},
		{name: "bare relative", input: "sqlite://dex.db", expected: "./dex.db"},
		{name: "escaped path", input: "sqlite://my%20dex.db", expected: "./my dex.db"},
		{name: "query string", input: "sqlite://dex.db?_pragma=busy_timeout(5000)", expected: "./dex.db?_pragma=busy_timeout(5000)"},
		{name: "parent relative", input: "sqlite://../dex.db", expected: "../dex.db"},
		{name: "absolute with query", input: "sqlite:///tmp/dex.db?mode=ro", expected: "/tmp/dex.db?mode=ro"},
		{name: "wrong scheme", input: "postgres://localhost/dex", wantErr: true},
		{name: "empty path", input: "sqlite://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseDSN(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDSN(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDSN(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("parseDSN(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseDSNHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := parseDSN("sqlite://~/dexview/dex.db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(home, "dexview", "dex.db"); got != want {
		t.Fatalf("parseDSN = %q, want %q", got, want)
	}
}
