package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level, format string
		wantErr       bool
	}{
		{"info", "text", false},
		{"debug", "json", false},
		{"WARN", "TEXT", false},
		{"loud", "text", true},
		{"info", "xml", true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger, err := newLogger(&buf, tt.level, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("newLogger(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			continue
		}
		if err == nil && logger == nil {
			t.Errorf("newLogger(%q, %q) returned nil logger", tt.level, tt.format)
		}
	}
}

func TestJSONLoggerWritesRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info", "json")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("saved run", "id", "float_1")
	if !strings.Contains(buf.String(), `"id":"float_1"`) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func rotationCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addRotationFlags(cmd)
	addRangeFlags(cmd)
	return cmd
}

func TestResolveConfigPrecedence(t *testing.T) {
	preset = "q16"
	defer func() { preset = "" }()

	cmd := rotationCommand()
	if err := cmd.Flags().Set("iterations", "12"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd, []string{"0.5"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Representation != "fixed" || cfg.FracBits != 16 {
		t.Errorf("preset not applied: %+v", cfg)
	}
	if cfg.Iterations != 12 {
		t.Errorf("iterations = %d, want 12 from flag", cfg.Iterations)
	}
	if cfg.Angle != 0.5 {
		t.Errorf("angle = %v, want 0.5 from argument", cfg.Angle)
	}
}

func TestResolveConfigErrors(t *testing.T) {
	cmd := rotationCommand()
	if _, err := resolveConfig(cmd, []string{"abc"}); err == nil {
		t.Error("expected error for non-numeric angle")
	}

	preset = "missing"
	defer func() { preset = "" }()
	if _, err := resolveConfig(rotationCommand(), nil); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{Use: "demo"}
	cmd.SetOut(&buf)

	if err := runDemo(cmd, nil); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if got := strings.Count(out, "Desired angle 1,"); got != 2 {
		t.Errorf("summaries = %d, want 2\n%s", got, out)
	}
	if got := strings.Count(out, "i=9 "); got != 1 {
		t.Errorf("only the float pipeline should print its trace, got %d final steps", got)
	}
}

func TestListPresets(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{Use: "presets"}
	cmd.SetOut(&buf)

	if err := listPresets(cmd, nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"zero", "half_pi", "q16"} {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("missing preset %s", name)
		}
	}
}

func TestRunNegativeAngleAfterDoubleDash(t *testing.T) {
	tests := [][]string{
		{"run", "--trace=false", "--", "-0.5"},
		{"run", "--trace=false", "--angle=-0.5"},
	}

	for _, args := range tests {
		var out, errOut bytes.Buffer
		root := newRootCmd()
		root.SetOut(&out)
		root.SetErr(&errOut)
		root.SetArgs(args)

		if err := root.Execute(); err != nil {
			t.Fatalf("%v: %v (%s)", args, err, errOut.String())
		}
		if !strings.Contains(out.String(), "Desired angle -0.5,") {
			t.Errorf("%v: unexpected output\n%s", args, out.String())
		}
	}
}
