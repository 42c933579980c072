package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIContract(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	out := b.String()

	requiredCommands := []string{
		"completion",
		"config",
		"help",
		"providers",
		"scan",
		"version",
	}

	for _, c := range requiredCommands {
		if !strings.Contains(out, c) {
			t.Errorf("expected top-level command %q in root help", c)
		}
	}
}

func TestCLICommandScanHelp(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"scan", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("scan help failed: %v", err)
	}

	out := b.String()
	for _, flag := range []string{"--format", "--config", "--rules-directory", "--max-display-error", "--strict", "--concurrency"} {
		if !strings.Contains(out, flag) {
			t.Errorf("expected flag %s in scan help", flag)
		}
	}
}
