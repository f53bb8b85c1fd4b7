// Package resolver evaluates the path-resolver expressions embedded in
// string-valued config fields. An expression is either a bare path or a
// call form ${name:arg1,arg2,...} naming a registered resolver function,
// evaluated against one sample folder.
//
// The registry is closed: resolver functions are compiled in, never loaded
// from config, so the set of callable names is statically enumerable.
package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for expression evaluation. Callers match with errors.Is.
var (
	// ErrUnknownResolver means the call form named an unregistered function.
	ErrUnknownResolver = errors.New("unknown resolver function")
	// ErrBadArgument means the argument list had the wrong arity or shape.
	ErrBadArgument = errors.New("bad resolver argument")
	// ErrNotFound means no candidate path exists on disk.
	ErrNotFound = errors.New("no candidate path exists")
	// ErrFilesystem wraps stat failures other than non-existence, so callers
	// can tell an unreadable path apart from a missing one.
	ErrFilesystem = errors.New("filesystem error")
)

// Expr is a parsed call form: a function name and its raw argument list.
type Expr struct {
	Name string
	Args []string
}

// resolverFunc evaluates one registered function against a sample folder.
type resolverFunc func(args []string, sampleDir string) (string, error)

// resolvers is the closed registry of callable functions.
var resolvers = map[string]resolverFunc{
	"first_path_exists":  firstPathExists,
	"sample_folder_name": sampleFolderName,
}

const sampleFolderNameExpr = "${sample_folder_name}"

// ExpandSampleName substitutes embedded ${sample_folder_name} occurrences
// with the sample folder's base name, so values like
// "captions/${sample_folder_name}.txt" work inside larger strings.
func ExpandSampleName(s, sampleDir string) string {
	if !strings.Contains(s, sampleFolderNameExpr) {
		return s
	}
	return strings.ReplaceAll(s, sampleFolderNameExpr, filepath.Base(sampleDir))
}

// IsExpr reports whether s is a call-form expression rather than a bare path.
func IsExpr(s string) bool {
	return strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}")
}

// Parse splits a call-form expression into name and arguments.
// Arguments are comma-separated and trimmed; no escaping of commas or "}"
// inside an argument is defined, matching the documented syntax.
func Parse(expr string) (Expr, error) {
	if !IsExpr(expr) {
		return Expr{}, fmt.Errorf("%w: %q is not a ${name:args} expression", ErrBadArgument, expr)
	}
	inner := expr[2 : len(expr)-1]
	name, rawArgs, hasArgs := strings.Cut(inner, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Expr{}, fmt.Errorf("%w: empty function name in %q", ErrBadArgument, expr)
	}
	var args []string
	if hasArgs {
		for _, a := range strings.Split(rawArgs, ",") {
			args = append(args, strings.TrimSpace(a))
		}
	}
	return Expr{Name: name, Args: args}, nil
}

// ResolvePath evaluates expr against sampleDir and returns an absolute path.
//
// A bare relative path is joined to sampleDir; a bare absolute path is
// returned unchanged. A call form is dispatched through the registry.
// No existence check is made for bare paths; resolver functions define
// their own existence semantics.
func ResolvePath(expr string, sampleDir string) (string, error) {
	if !IsExpr(expr) {
		expr = ExpandSampleName(expr, sampleDir)
		if filepath.IsAbs(expr) {
			return expr, nil
		}
		return filepath.Join(sampleDir, expr), nil
	}
	parsed, err := Parse(expr)
	if err != nil {
		return "", err
	}
	fn, ok := resolvers[parsed.Name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownResolver, parsed.Name)
	}
	return fn(parsed.Args, sampleDir)
}

// firstPathExists returns the first candidate that exists, joined under
// sampleDir when relative. Candidates are checked left to right and the
// first filesystem hit wins; later candidates are never consulted.
func firstPathExists(args []string, sampleDir string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: first_path_exists requires at least one candidate", ErrBadArgument)
	}
	for _, arg := range args {
		if arg == "" {
			return "", fmt.Errorf("%w: first_path_exists got an empty candidate", ErrBadArgument)
		}
	}
	for _, candidate := range args {
		full := candidate
		if !filepath.IsAbs(full) {
			full = filepath.Join(sampleDir, candidate)
		}
		_, err := os.Stat(full)
		if err == nil {
			return full, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("%w: stat %s: %w", ErrFilesystem, full, err)
		}
	}
	return "", fmt.Errorf("%w: tried %s under %s", ErrNotFound, strings.Join(args, ", "), sampleDir)
}

// sampleFolderName returns the sample folder's base name, so layouts can
// embed the sample's identity in captions and headings.
func sampleFolderName(args []string, sampleDir string) (string, error) {
	if len(args) > 0 {
		return "", fmt.Errorf("%w: sample_folder_name takes no arguments", ErrBadArgument)
	}
	return filepath.Base(sampleDir), nil
}
