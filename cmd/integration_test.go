package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func writeTestDataset(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "rows.jsonl")
	lines := []string{
		`[{"values":[{"value":"Name"},{"value":"Age"}],"type":"HEADERS"}]`,
		`[{"values":[{"value":"John"},{"value":"34"}],"type":"DATA"}]`,
		`[{"values":[{"value":"Jane"},{"value":"29"}],"type":"DATA"}]`,
	}
	if err := os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return p
}

func TestInspectCommand(t *testing.T) {
	p := writeTestDataset(t)
	runCmd(t, "inspect", p)
}

func TestInspectCommandMissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"inspect", filepath.Join(t.TempDir(), "nope.jsonl")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for missing dataset")
	}
}

func TestTrainCommandRejectsTinyDataset(t *testing.T) {
	// 3 rows at the default 0.2 split leave an empty test partition; the
	// command must fail cleanly instead of panicking downstream.
	p := writeTestDataset(t)
	rootCmd.SetArgs([]string{"train", p})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for a dataset too small to split")
	}
}

func TestConfigSetAndShow(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	prevCfgFile, prevCfg := cfgFile, cfg
	cfgFile, cfg = cfgPath, nil
	t.Cleanup(func() { cfgFile, cfg = prevCfgFile, prevCfg })

	runCmd(t, "config", "set", "sample_size", "500")
	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(b), "sample_size: 500") {
		t.Fatalf("saved config missing value: %q", string(b))
	}

	runCmd(t, "config", "show")
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	prevCfgFile, prevCfg := cfgFile, cfg
	cfgFile, cfg = cfgPath, nil
	t.Cleanup(func() { cfgFile, cfg = prevCfgFile, prevCfg })

	for _, args := range [][]string{
		{"config", "set", "split_ratio", "1.5"},
		{"config", "set", "trees", "zero"},
		{"config", "set", "report_format", "xml"},
		{"config", "set", "no_such_key", "1"},
	} {
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}
