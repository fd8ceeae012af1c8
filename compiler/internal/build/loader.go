package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/check"
	"github.com/nimblelang/nimble/compiler/internal/parser"
)

// Ext is the conventional extension of Nimble source files.
const Ext = ".nim"

// Unit is one loaded source file.
type Unit struct {
	Path   string // as given, or with Ext appended when that was needed
	Src    []byte
	Script *ast.Script
}

// Load reads and parses a Nimble source file. A path without an extension
// that does not exist is retried with Ext appended. Syntax errors are
// wrapped *diag.Diagnostic values.
func Load(path string) (*Unit, error) {
	path = Resolve(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel(path), err)
	}
	s, err := parser.ParseScript(string(data))
	if err != nil {
		return &Unit{Path: path, Src: data}, fmt.Errorf("parse %s: %w", rel(path), err)
	}
	return &Unit{Path: path, Src: data, Script: s}, nil
}

// Resolve appends Ext to an extensionless path that only exists with it.
func Resolve(path string) string {
	if filepath.Ext(path) == "" && !fileExists(path) && fileExists(path+Ext) {
		return path + Ext
	}
	return path
}

// Check loads path and runs semantic analysis on it.
func Check(path string, opts check.Options) (*Unit, *check.Result, error) {
	u, err := Load(path)
	if err != nil {
		return u, nil, err
	}
	return u, check.Analyze(u.Script, opts), nil
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

// rel shortens p relative to the working directory for messages.
func rel(p string) string {
	wd, err := os.Getwd()
	if err != nil {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	r, err := filepath.Rel(wd, abs)
	if err != nil {
		return p
	}
	return r
}
