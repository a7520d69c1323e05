package main

// Notes:
// - isCommand: we test command name matching including case sensitivity.
// - hasVerboseFlag: we test the pre-parse scan used for GOMAXPROCS logging.
// - runMain: we test dispatch and exit codes for command scenarios. Actual
//   file conversion is covered by the integration tests in convert_test.go.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// testEnv returns an Environment writing to fresh buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    time.Now,
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// TestIsCommand - Command name detection
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"convert", true},
		{"version", true},
		{"help", true},
		{"completion", true},
		{"foo", false},
		{"", false},
		{"doc.md", false},
		{"report.docx", false},
		{"Convert", false}, // case sensitive
		{"VERSION", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := isCommand(tt.input)
			if got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Pre-parse verbose detection
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "long flag", args: []string{"convert", "doc.md", "--verbose"}, want: true},
		{name: "short flag", args: []string{"-v", "doc.md"}, want: true},
		{name: "no flag", args: []string{"convert", "doc.md"}, want: false},
		{name: "empty args", args: nil, want: false},
		{name: "verbose as value not flag", args: []string{"--title", "verbose"}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hasVerboseFlag(tt.args)
			if got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestVersionVariable - Version variable default
// ---------------------------------------------------------------------------

func TestVersionVariable(t *testing.T) {
	t.Parallel()

	if Version == "" {
		t.Error("Version should not be empty")
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch and output
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage and exits with ExitUsage",
			args:         []string{},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: doc2tex"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"doc2tex " + Version},
		},
		{
			name:         "help command exits 0",
			args:         []string{"help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: doc2tex", "Commands:"},
		},
		{
			name:         "help convert shows convert help",
			args:         []string{"help", "convert"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: doc2tex convert"},
		},
		{
			name:         "help completion shows completion help",
			args:         []string{"help", "completion"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: doc2tex completion"},
		},
		{
			name:         "help unknown command reports to stderr",
			args:         []string{"help", "badcmd"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Unknown command: badcmd"},
		},
		{
			name:         "completion without shell prints usage",
			args:         []string{"completion"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: doc2tex completion"},
		},
		{
			name:         "completion bash emits script",
			args:         []string{"completion", "bash"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"_doc2tex_completions"},
		},
		{
			name:         "completion invalid shell exits ExitUsage",
			args:         []string{"completion", "badshell"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unsupported shell"},
		},
		{
			name:         "unknown flag exits ExitUsage",
			args:         []string{"convert", "--nope"},
			wantCode:     ExitUsage,
		},
		{
			name:         "convert without input exits ExitIO",
			args:         []string{"convert"},
			wantCode:     ExitIO,
			wantInStderr: []string{"no input specified"},
		},
		{
			name:         "implicit convert of missing file exits ExitIO",
			args:         []string{"nonexistent.md"},
			wantCode:     ExitIO,
		},
		{
			name:         "explicit convert of missing file exits ExitIO",
			args:         []string{"convert", "nonexistent.md"},
			wantCode:     ExitIO,
		},
		{
			name:     "negative workers exits ExitUsage",
			args:     []string{"convert", "doc.md", "--workers=-1"},
			wantCode: ExitUsage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()

			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}

			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}

			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}
