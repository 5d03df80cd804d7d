// Package gqldoc loads GraphQL operation documents from disk into the
// operation set the generator consumes, optionally validating them against a
// schema when one is supplied.
package gqldoc

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

// ErrorCode categorizes loader errors for clearer handling and messaging.
type ErrorCode string

const (
	InputError      ErrorCode = "InputError"
	ParseError      ErrorCode = "ParseError"
	ValidationError ErrorCode = "ValidationError"
)

// DocError is a structured loader error with an optional source location.
type DocError struct {
	Code     ErrorCode
	Message  string
	Location string // file path
	Cause    error
}

func (e *DocError) Error() string { return e.Message }
func (e *DocError) Unwrap() error { return e.Cause }

// DocumentSet is the parsed, immutable input to the generator.
type DocumentSet struct {
	Operations []*ast.OperationDefinition
	Fragments  []*ast.FragmentDefinition
	// Schema is non-nil only when a schema file was supplied to Load.
	Schema *ast.Schema
}

// Settings configures loader behavior.
type Settings struct {
	// SchemaFile, when set, is parsed and the loaded documents are validated
	// against it. Without it documents are parsed but not validated.
	SchemaFile string
	// Extensions are the file suffixes collected when an input is a
	// directory.
	Extensions []string
}

// DefaultSettings returns recommended defaults.
func DefaultSettings() Settings {
	return Settings{Extensions: []string{".graphql", ".gql"}}
}

// Option mutates Settings.
type Option func(*Settings)

func WithSchemaFile(path string) Option { return func(s *Settings) { s.SchemaFile = path } }
func WithExtensions(exts []string) Option {
	return func(s *Settings) { s.Extensions = append([]string(nil), exts...) }
}

// Load reads every input (a file, a directory walked recursively, or a glob
// pattern) into one document set. Every operation must carry a name; the
// generator keys everything off operation names.
func Load(ctx context.Context, inputs []string, opts ...Option) (*DocumentSet, error) {
	settings := DefaultSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	files, err := expandInputs(inputs, settings.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &DocError{Code: InputError, Message: "gqldoc: no operation documents found"}
	}

	set := &DocumentSet{}
	merged := &ast.QueryDocument{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, &DocError{Code: InputError, Message: fmt.Sprintf("read %s: %v", path, rerr), Location: path, Cause: rerr}
		}
		doc, perr := parser.ParseQuery(&ast.Source{Name: path, Input: string(data)})
		if perr != nil {
			return nil, &DocError{Code: ParseError, Message: fmt.Sprintf("parse %s: %v", path, perr), Location: path, Cause: perr}
		}
		for _, op := range doc.Operations {
			if op.Name == "" {
				return nil, &DocError{Code: ValidationError, Message: fmt.Sprintf("%s: anonymous operations are not supported; every operation needs a name", path), Location: path}
			}
			set.Operations = append(set.Operations, op)
		}
		set.Fragments = append(set.Fragments, doc.Fragments...)
		merged.Operations = append(merged.Operations, doc.Operations...)
		merged.Fragments = append(merged.Fragments, doc.Fragments...)
	}

	if strings.TrimSpace(settings.SchemaFile) != "" {
		schema, serr := loadSchema(settings.SchemaFile)
		if serr != nil {
			return nil, serr
		}
		if errs := validator.Validate(schema, merged); len(errs) > 0 {
			return nil, &DocError{Code: ValidationError, Message: fmt.Sprintf("validate: %v", errs[0]), Location: settings.SchemaFile, Cause: errs}
		}
		set.Schema = schema
	}

	return set, nil
}

func loadSchema(path string) (*ast.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocError{Code: InputError, Message: fmt.Sprintf("read schema %s: %v", path, err), Location: path, Cause: err}
	}
	schema, gerr := gqlparser.LoadSchema(&ast.Source{Name: path, Input: string(data)})
	if gerr != nil {
		return nil, &DocError{Code: ParseError, Message: fmt.Sprintf("parse schema %s: %v", path, gerr), Location: path, Cause: gerr}
	}
	return schema, nil
}

// expandInputs resolves files, directories and glob patterns into a sorted,
// deduplicated file list.
func expandInputs(inputs []string, exts []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, in := range inputs {
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		if strings.ContainsAny(in, "*?[") {
			matches, err := filepath.Glob(in)
			if err != nil {
				return nil, &DocError{Code: InputError, Message: fmt.Sprintf("bad pattern %q: %v", in, err), Cause: err}
			}
			sort.Strings(matches)
			for _, m := range matches {
				add(m)
			}
			continue
		}
		st, err := os.Stat(in)
		if err != nil {
			return nil, &DocError{Code: InputError, Message: fmt.Sprintf("stat %s: %v", in, err), Location: in, Cause: err}
		}
		if !st.IsDir() {
			add(in)
			continue
		}
		var collected []string
		werr := filepath.WalkDir(in, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			for _, ext := range exts {
				if strings.HasSuffix(path, ext) {
					collected = append(collected, path)
					break
				}
			}
			return nil
		})
		if werr != nil {
			return nil, &DocError{Code: InputError, Message: fmt.Sprintf("walk %s: %v", in, werr), Location: in, Cause: werr}
		}
		sort.Strings(collected)
		for _, p := range collected {
			add(p)
		}
	}
	return files, nil
}
