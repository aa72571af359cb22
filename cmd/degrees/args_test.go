package main

import (
	"strings"
	"testing"

	"github.com/persistorai/degrees/internal/config"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "path with one name", args: []string{"path", "Tom Cruise"}, wantErr: "accepts 0 or 2 arg(s)"},
		{name: "path with three names", args: []string{"path", "a", "b", "c"}, wantErr: "accepts 0 or 2 arg(s)"},
		{name: "path with unknown format", args: []string{"path", "a", "b", "--format", "yaml"}, wantErr: "unknown format"},
		{name: "people search without name", args: []string{"people", "search"}, wantErr: "accepts 1 arg(s)"},
		{name: "people neighbors without id", args: []string{"people", "neighbors"}, wantErr: "accepts 1 arg(s)"},
		{name: "import with args", args: []string{"import", "extra"}, wantErr: "unknown command"},
		{name: "serve with args", args: []string{"serve", "extra"}, wantErr: "unknown command"},
		{name: "unknown source", args: []string{"path", "a", "b", "--source", "mongo"}, wantErr: "unknown dataset source"},
		{name: "import into csv", args: []string{"import", "--to", "csv"}, wantErr: "cannot import"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)

			args := tc.args
			if tc.name == "import into csv" {
				args = append(args, "--data", writeDataset(t))
			}

			_, _, err := run(t, "", args...)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}

			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}

	if out != versionString()+"\n" {
		t.Errorf("got %q", out)
	}

	if !strings.HasPrefix(out, "degrees version ") {
		t.Errorf("unexpected version line %q", out)
	}
}

func TestMissingDataDir(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "", "path", "a", "b", "--data", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "loading csv dataset") {
		t.Errorf("expected a csv loading error, got %v", err)
	}
}

func TestApplyDatasetFlags(t *testing.T) {
	resetFlags(t)

	flagSource, flagSQLite, flagDatabaseURL, flagMaxDepth = "sqlite", "/tmp/credits.db", "postgres://x", 6

	cfg := &config.Config{DatasetSource: "csv", DataDir: "large", SearchMaxDepth: 0}
	applyDatasetFlags(func(name string) bool { return name == "source" || name == "sqlite" || name == "max-depth" }, cfg)

	if cfg.DatasetSource != "sqlite" || cfg.SQLitePath != "/tmp/credits.db" || cfg.SearchMaxDepth != 6 {
		t.Errorf("changed flags not applied: %+v", cfg)
	}

	if cfg.DataDir != "large" || cfg.DatabaseURL.Value() != "" {
		t.Errorf("unchanged flags must not override the environment: %+v", cfg)
	}
}
