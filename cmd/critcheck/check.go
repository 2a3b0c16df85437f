// check.go implements the 'critcheck check' command.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/inspector"
)

const (
	// backendImportPrefix matches the in-tree backend packages; a blank
	// import of one is a registration.
	backendImportPrefix = "github.com/kolkov/critsection/backends/"

	// protocolImportPath is the package whose SetImpl call registers a
	// custom backend.
	protocolImportPath = "github.com/kolkov/critsection/critical"
)

// registration is one backend-binding site found in the source.
type registration struct {
	File string
	Line int
	Desc string
}

// checkConfig holds configuration for the check command.
type checkConfig struct {
	// dir is the root of the module to scan.
	dir string

	// tags are the build tags the real build will use. File build
	// constraints are evaluated against them, and conflicting
	// restore-state width tags among them are rejected.
	tags []string

	// extraPrefixes are additional import path prefixes to treat as
	// backend packages (out-of-module backends critcheck cannot see into).
	extraPrefixes []string
}

// checkCommand implements the 'critcheck check' command.
//
// Flow:
//  1. Parse flags and locate the target module (go.mod)
//  2. Reject conflicting restore-state width tags
//  3. Parse the module's source, skipping files excluded by build
//     constraints, and collect backend registrations
//  4. Report: exactly one registration is a pass, anything else fails
//
// Limitation: a backend package outside the module registers inside its own
// init function, which critcheck does not parse; name such packages with
// -backends so their imports are counted.
func checkCommand(args []string) int {
	config, err := parseCheckArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	modPath, err := findModulePath(config.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	failed := false

	if err := checkWidthTags(config.tags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		failed = true
	}

	regs, err := scanModule(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch len(regs) {
	case 0:
		fmt.Fprintf(os.Stderr, "Error: %v\n", &CheckError{
			Message: fmt.Sprintf("module %s registers no critical-section backend", modPath),
			Suggestion: "blank-import a backend package (e.g. " + backendImportPrefix + "stdlock) " +
				"or register a custom backend with critical.SetImpl from an init function",
		})
		failed = true
	case 1:
		fmt.Printf("ok: %s binds one backend: %s (%s:%d)\n",
			modPath, regs[0].Desc, regs[0].File, regs[0].Line)
	default:
		for _, reg := range regs {
			fmt.Fprintf(os.Stderr, "Error: %v\n", &CheckError{
				File:    reg.File,
				Line:    reg.Line,
				Message: "backend registration: " + reg.Desc,
			})
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", &CheckError{
			Message: fmt.Sprintf("module %s registers %d critical-section backends", modPath, len(regs)),
			Suggestion: "a build may link exactly one backend; remove all but one of the " +
				"registrations listed above",
		})
		failed = true
	}

	if failed {
		return 1
	}
	return 0
}

// parseCheckArgs parses the check subcommand's flags and target directory.
func parseCheckArgs(args []string) (*checkConfig, error) {
	flags := flag.NewFlagSet("check", flag.ContinueOnError)
	tags := flags.String("tags", "", "build tags the build will use (comma- or space-separated)")
	backends := flags.String("backends", "", "extra import path prefixes to count as backend packages (comma-separated)")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	config := &checkConfig{dir: "."}
	if flags.NArg() > 0 {
		config.dir = flags.Arg(0)
	}
	config.tags = splitList(*tags)
	config.extraPrefixes = splitList(*backends)
	return config, nil
}

// splitList splits a comma- or space-separated flag value.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// widthTagPrefix is shared by the build tags that select a restore-state
// representation.
const widthTagPrefix = "critical_restorestate_"

// checkWidthTags rejects a tag set selecting more than one restore-state
// width. One width per build: two tags would activate two RawRestoreState
// declarations and the build would fail with a duplicate-declaration error;
// this reports the cause instead.
func checkWidthTags(tags []string) error {
	var widths []string
	for _, tag := range tags {
		if strings.HasPrefix(tag, widthTagPrefix) {
			widths = append(widths, tag)
		}
	}
	if len(widths) <= 1 {
		return nil
	}
	return &CheckError{
		Message: fmt.Sprintf("conflicting restore-state widths selected: %s",
			strings.Join(widths, ", ")),
		Suggestion: "exactly one restore-state representation may be active per build; " +
			"keep at most one " + widthTagPrefix + "* tag",
	}
}

// scanModule parses every Go file under the module root that the build
// would include and collects backend registrations: blank imports of
// backend packages and critical.SetImpl calls.
func scanModule(config *checkConfig) ([]registration, error) {
	fset := token.NewFileSet()

	var files []*ast.File
	// imports maps each scanned filename to its local-name -> import-path
	// table, for resolving the package a SetImpl selector refers to.
	imports := make(map[string]map[string]string)

	err := filepath.WalkDir(config.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(d.Name(), path, config.dir) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !buildIncludes(src, config.tags) {
			return nil
		}

		file, err := parser.ParseFile(fset, path, src, 0)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		table := make(map[string]string)
		for _, imp := range file.Imports {
			importPath, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				continue
			}
			name := defaultImportName(importPath)
			if imp.Name != nil {
				name = imp.Name.Name
			}
			table[name] = importPath
		}
		imports[path] = table
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var regs []registration
	in := inspector.New(files)
	in.Preorder([]ast.Node{(*ast.ImportSpec)(nil), (*ast.CallExpr)(nil)}, func(n ast.Node) {
		pos := fset.Position(n.Pos())

		switch node := n.(type) {
		case *ast.ImportSpec:
			if node.Name == nil || node.Name.Name != "_" {
				return
			}
			importPath, err := strconv.Unquote(node.Path.Value)
			if err != nil {
				return
			}
			if isBackendImport(importPath, config.extraPrefixes) {
				regs = append(regs, registration{
					File: pos.Filename,
					Line: pos.Line,
					Desc: fmt.Sprintf("blank import of %s", importPath),
				})
			}

		case *ast.CallExpr:
			sel, ok := node.Fun.(*ast.SelectorExpr)
			if !ok || sel.Sel.Name != "SetImpl" {
				return
			}
			ident, ok := sel.X.(*ast.Ident)
			if !ok {
				return
			}
			if imports[pos.Filename][ident.Name] != protocolImportPath {
				return
			}
			regs = append(regs, registration{
				File: pos.Filename,
				Line: pos.Line,
				Desc: "critical.SetImpl call",
			})
		}
	})

	return regs, nil
}

// skipDir reports whether the walker should not descend into name.
// testdata, vendor, and hidden or underscore-prefixed directories are
// invisible to the go tool and stay invisible here.
func skipDir(name, path, root string) bool {
	if path == root {
		return false
	}
	return name == "testdata" || name == "vendor" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// isBackendImport reports whether importPath names a backend package.
func isBackendImport(importPath string, extraPrefixes []string) bool {
	if strings.HasPrefix(importPath, backendImportPrefix) {
		return true
	}
	for _, prefix := range extraPrefixes {
		if strings.HasPrefix(importPath, prefix) {
			return true
		}
	}
	return false
}

// buildIncludes reports whether a file's //go:build constraint, if any,
// is satisfied by the configured tags plus the host GOOS/GOARCH. Files
// without a constraint are always included.
func buildIncludes(src []byte, tags []string) bool {
	expr := buildConstraint(src)
	if expr == nil {
		return true
	}
	return expr.Eval(func(tag string) bool {
		if tag == runtime.GOOS || tag == runtime.GOARCH {
			return true
		}
		for _, t := range tags {
			if tag == t {
				return true
			}
		}
		return false
	})
}

// buildConstraint extracts the //go:build expression from the lines
// preceding the package clause, or nil if there is none.
func buildConstraint(src []byte) constraint.Expr {
	for _, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "package ") {
			break
		}
		if constraint.IsGoBuild(line) {
			expr, err := constraint.Parse(line)
			if err != nil {
				return nil
			}
			return expr
		}
	}
	return nil
}

// defaultImportName derives the local name an unnamed import binds:
// the last path element, skipping a major-version suffix like /v2.
func defaultImportName(importPath string) string {
	elems := strings.Split(importPath, "/")
	name := elems[len(elems)-1]
	if len(elems) >= 2 && isMajorVersion(name) {
		name = elems[len(elems)-2]
	}
	return name
}

// isMajorVersion reports whether s looks like a module major-version path
// element ("v2", "v13").
func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
