package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-yew/internal/log"
)

func TestRunExpand(t *testing.T) {
	type tc struct {
		macro    string
		input    string
		contains []string
		wantErr  string
	}

	tests := map[string]tc{
		"html": {
			macro:    "html",
			input:    `<div class="a">{"hi"}</div>`,
			contains: []string{"yew.Element", `"div"`},
		},
		"bang suffix": {
			macro:    "classes!",
			input:    `"a", extra`,
			contains: []string{`yew.NewClasses().Add("a")`, "extra"},
		},
		"derive": {
			macro:    "derive_props",
			input:    "type P struct {\n\tName string\n}",
			contains: []string{"PBuilder"},
		},
		"failure": {
			macro:    "html",
			input:    "<div>",
			contains: []string{"compile_error", "unclosed tag <div>"},
			wantErr:  "html! failed with 1 error(s)",
		},
		"unknown macro": {
			macro:   "markup",
			input:   "<div />",
			wantErr: "markup",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := runExpand(tt.macro, strings.NewReader(tt.input), &out)
			if tt.wantErr == "" && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)) {
				t.Fatalf("error = %v, want %q", err, tt.wantErr)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestRootCmd_Version(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), "yew version "+version+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_ExitCode(t *testing.T) {
	type tc struct {
		args     []string
		wantCode int
		wantLog  string
	}

	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.gsx")

	tests := map[string]tc{
		"success": {
			args:     []string{"version"},
			wantCode: 0,
		},
		"failure is logged": {
			args:     []string{"check", missing},
			wantCode: 1,
			wantLog:  missing,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "yew.log")
			t.Setenv(log.DebugEnv, logFile)
			t.Cleanup(func() { log.Configure(0, "") })

			if code := run(tt.args); code != tt.wantCode {
				t.Errorf("run(%v) = %d, want %d", tt.args, code, tt.wantCode)
			}
			if tt.wantLog == "" {
				return
			}
			data, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("reading log: %v", err)
			}
			if !strings.Contains(string(data), tt.wantLog) {
				t.Errorf("log missing %q:\n%s", tt.wantLog, data)
			}
		})
	}
}
