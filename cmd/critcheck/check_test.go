// Package main implements the critcheck CLI tool.
//
// Tests for the 'critcheck check' command: the scanner must find exactly
// the backend registrations a build would link, before anything runs.
package main

import (
	"path/filepath"
	"strings"
	"testing"
)

// scanTestdata runs the module scanner over one testdata module.
func scanTestdata(t *testing.T, name string, tags ...string) []registration {
	t.Helper()
	regs, err := scanModule(&checkConfig{
		dir:  filepath.Join("testdata", name),
		tags: tags,
	})
	if err != nil {
		t.Fatalf("scanModule(%s): %v", name, err)
	}
	return regs
}

// TestScanSingleRegistration tests the passing configuration: one blank
// backend import.
func TestScanSingleRegistration(t *testing.T) {
	regs := scanTestdata(t, "single")

	if len(regs) != 1 {
		t.Fatalf("found %d registrations, want 1: %+v", len(regs), regs)
	}
	if !strings.Contains(regs[0].Desc, "backends/stdlock") {
		t.Errorf("registration = %q, want the stdlock blank import", regs[0].Desc)
	}
	if regs[0].Line == 0 {
		t.Error("registration has no line number")
	}
}

// TestScanDoubleRegistration tests that two backend imports are both
// reported, with positions.
func TestScanDoubleRegistration(t *testing.T) {
	regs := scanTestdata(t, "double")

	if len(regs) != 2 {
		t.Fatalf("found %d registrations, want 2: %+v", len(regs), regs)
	}
	for _, reg := range regs {
		if !strings.HasSuffix(reg.File, "main.go") || reg.Line == 0 {
			t.Errorf("registration %+v lacks a usable position", reg)
		}
	}
}

// TestScanCustomBackend tests detection of a critical.SetImpl call.
func TestScanCustomBackend(t *testing.T) {
	regs := scanTestdata(t, "custom")

	if len(regs) != 1 {
		t.Fatalf("found %d registrations, want 1: %+v", len(regs), regs)
	}
	if regs[0].Desc != "critical.SetImpl call" {
		t.Errorf("registration = %q, want critical.SetImpl call", regs[0].Desc)
	}
}

// TestScanNoRegistration tests the zero-backend configuration. Using the
// protocol without a backend is not a registration.
func TestScanNoRegistration(t *testing.T) {
	regs := scanTestdata(t, "none")

	if len(regs) != 0 {
		t.Fatalf("found %d registrations, want 0: %+v", len(regs), regs)
	}
}

// TestScanRespectsBuildTags tests that registrations behind build
// constraints are counted only when the tag set selects them. The tagged
// module binds spinlock under the hw tag and stdlock otherwise; either
// build is valid, both at once would not be.
func TestScanRespectsBuildTags(t *testing.T) {
	tests := []struct {
		name        string
		tags        []string
		wantBackend string
	}{
		{
			name:        "default build",
			tags:        nil,
			wantBackend: "backends/stdlock",
		},
		{
			name:        "hw build",
			tags:        []string{"hw"},
			wantBackend: "backends/spinlock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regs := scanTestdata(t, "tagged", tt.tags...)
			if len(regs) != 1 {
				t.Fatalf("found %d registrations, want 1: %+v", len(regs), regs)
			}
			if !strings.Contains(regs[0].Desc, tt.wantBackend) {
				t.Errorf("registration = %q, want %s", regs[0].Desc, tt.wantBackend)
			}
		})
	}
}

// TestCheckWidthTags tests width tag conflict detection.
func TestCheckWidthTags(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		wantErr bool
	}{
		{
			name:    "no tags",
			tags:    nil,
			wantErr: false,
		},
		{
			name:    "one width",
			tags:    []string{"critical_restorestate_u32"},
			wantErr: false,
		},
		{
			name:    "width plus unrelated tags",
			tags:    []string{"linux", "critical_restorestate_u8", "hw"},
			wantErr: false,
		},
		{
			name:    "two widths",
			tags:    []string{"critical_restorestate_u8", "critical_restorestate_u32"},
			wantErr: true,
		},
		{
			name:    "none plus u64",
			tags:    []string{"critical_restorestate_none", "critical_restorestate_u64"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkWidthTags(tt.tags)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkWidthTags(%v) error = %v, wantErr %v", tt.tags, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "Suggestion:") {
				t.Errorf("width conflict error has no suggestion: %v", err)
			}
		})
	}
}

// TestFindModulePath tests module identification from testdata go.mod files.
func TestFindModulePath(t *testing.T) {
	got, err := findModulePath(filepath.Join("testdata", "single"))
	if err != nil {
		t.Fatalf("findModulePath: %v", err)
	}
	if got != "example.com/firmware" {
		t.Errorf("module path = %q, want example.com/firmware", got)
	}
}

// TestCheckErrorFormat tests the positional error format.
func TestCheckErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *CheckError
		want string
	}{
		{
			name: "positional",
			err:  &CheckError{File: "main.go", Line: 7, Message: "backend registration"},
			want: "main.go:7: backend registration",
		},
		{
			name: "module level with suggestion",
			err:  &CheckError{Message: "no backend", Suggestion: "import one"},
			want: "no backend\n\nSuggestion: import one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSplitList tests flag value splitting.
func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: nil},
		{input: "a,b", want: []string{"a", "b"}},
		{input: "a b,c", want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		got := splitList(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
				break
			}
		}
	}
}
