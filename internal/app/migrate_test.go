package app

import (
	"errors"
	"testing"

	"github.com/riskibarqy/football-explorer/internal/config"
	"github.com/riskibarqy/football-explorer/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "default", args: nil, want: 1},
		{name: "explicit", args: []string{" 3 "}, want: 3},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "text", args: []string{"all"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSteps(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSteps(%v) err=%v wantErr=%v", tt.args, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("parseSteps(%v)=%d want=%d", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion("1760832000"); err != nil || v != 1760832000 {
		t.Fatalf("unexpected version parse: %d %v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected negative version to fail")
	}
	if v, err := parseTarget("42"); err != nil || v != 42 {
		t.Fatalf("unexpected target parse: %d %v", v, err)
	}
	if _, err := parseTarget("latest"); err == nil {
		t.Fatalf("expected non-numeric target to fail")
	}
}

func TestResolveMigrationsDir_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", dir)

	got, err := resolveMigrationsDir()
	if err != nil {
		t.Fatalf("resolve migrations dir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}

func TestRunMigration_Usage(t *testing.T) {
	err := RunMigration(config.Config{DBURL: "postgres://localhost/football_explorer"}, logging.NewNop(), nil)
	if !errors.Is(err, ErrMigrationUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}

	err = RunMigration(config.Config{}, logging.NewNop(), []string{"up"})
	if err == nil {
		t.Fatalf("expected missing DB_URL to fail")
	}
}
