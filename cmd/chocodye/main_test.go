package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("CHOCODYE_SWATCHES", "false")

	var out bytes.Buffer
	resetFlags(rootCmd)
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags puts every flag of cmd and its subcommands back to its default,
// since cobra keeps parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestFruitsCommand(t *testing.T) {
	out, err := run(t, "fruits")
	if err != nil {
		t.Fatalf("fruits failed: %v", err)
	}
	for _, want := range []string{"Xelphatol Apple", "R+5 G-5 B-5", "resets to desert-yellow", "20% less"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestColorsCommand(t *testing.T) {
	out, err := run(t, "colors", "purple")
	if err != nil {
		t.Fatalf("colors failed: %v", err)
	}
	if !strings.Contains(out, "lotus-pink") || !strings.Contains(out, "#fecef5") {
		t.Errorf("purple listing missing lotus-pink:\n%s", out)
	}
	if strings.Contains(out, "snow-white") {
		t.Errorf("purple listing contains a white dye:\n%s", out)
	}

	if _, err := run(t, "colors", "orange"); err == nil {
		t.Error("expected an error for an unknown category")
	}
}

func TestMealCommandSameColor(t *testing.T) {
	out, err := run(t, "meal", "snow-white", "snow-white")
	if err != nil {
		t.Fatalf("meal failed: %v", err)
	}
	if !strings.Contains(out, "Nothing to feed") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestMealCommandJSON(t *testing.T) {
	out, err := run(t, "meal", "--json", "apple-green", "apple-green")
	if err != nil {
		t.Fatalf("meal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if decoded["start"] != "apple-green" || decoded["cost"] != "0.00" {
		t.Errorf("unexpected JSON: %v", decoded)
	}
}

func TestJSONFlagDoesNotLeak(t *testing.T) {
	if _, err := run(t, "meal", "--json", "snow-white", "snow-white"); err != nil {
		t.Fatalf("meal --json failed: %v", err)
	}

	out, err := run(t, "meal", "snow-white", "snow-white")
	if err != nil {
		t.Fatalf("meal failed: %v", err)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("second run printed JSON without --json:\n%s", out)
	}
	if !strings.Contains(out, "Nothing to feed") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestMealCommandUnknownColor(t *testing.T) {
	_, err := run(t, "meal", "snow-white", "vanilla-yellow")
	if err == nil || !strings.Contains(err.Error(), "unknown color") {
		t.Errorf("expected unknown color error, got %v", err)
	}
}

func TestNearestCommand(t *testing.T) {
	out, err := run(t, "nearest", "#ffffff")
	if err != nil {
		t.Fatalf("nearest failed: %v", err)
	}
	if !strings.Contains(out, "closest to lotus-pink") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, "nearest", "#9bb363")
	if err != nil {
		t.Fatalf("nearest failed: %v", err)
	}
	if !strings.Contains(out, "exactly apple-green") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "nearest", "9bb363"); err == nil {
		t.Error("expected an error for a color without '#'")
	}
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "table", "desert-yellow")
	if err != nil {
		t.Fatalf("table failed: %v", err)
	}
	if !strings.Contains(out, "Target") || !strings.Contains(out, "snow-white") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
