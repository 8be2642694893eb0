package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource transforms script source before zygomys sees it:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal),
//     avoiding keyword symbols colliding with script variables.
//  2. Kebab-case to underscore: material-thickness -> material_thickness,
//     since zygomys reads a hyphen between identifiers as subtraction.
//  3. Lisp ; line comments become zygomys // comments.
//
// All three respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Copy double-quoted string literals verbatim.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to //.
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword", preserving := assignment.
		if b[i] == ':' && i+1 < len(b) {
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Kebab-case identifier: hyphen between identifier characters.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string, returning
// the keyword name with hyphens normalized to underscores so keywords
// line up with definition parameter names.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return strings.ReplaceAll(str.S[len(kwPrefix):], "-", "_"), true
	}
	return "", false
}

// kwArgs is a parsed keyword argument list.
type kwArgs map[string]zygo.Sexp

// parseArgs collects :keyword value pairs. A positional argument is an
// error; the panel and carcass builtins are keyword-only.
func parseArgs(form string, args []zygo.Sexp) (kwArgs, error) {
	kw := make(kwArgs)
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if !ok {
			return nil, fmt.Errorf("%s: expected :keyword, got %s", form, args[i].SexpString(nil))
		}
		if i+1 >= len(args) {
			return nil, fmt.Errorf("%s: keyword :%s has no value", form, name)
		}
		kw[name] = args[i+1]
		i += 2
	}
	return kw, nil
}

// ---------------------------------------------------------------------------
// Value extraction
// ---------------------------------------------------------------------------

// toFloat64 extracts a number from a Sexp; booleans map to 0/1 so
// toggles flow through definition Values uniformly.
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	case *zygo.SexpBool:
		if v.Val {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("expected number, got %s", s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %s", s.SexpString(nil))
}

// toGrain converts a :length / :width keyword to the grain value.
func toGrain(s zygo.Sexp) (float64, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return 0, fmt.Errorf("expected grain keyword (:length or :width), got %s", s.SexpString(nil))
	}
	switch str.S[len(kwPrefix):] {
	case "length":
		return float64(cabinet.GrainLength), nil
	case "width":
		return float64(cabinet.GrainWidth), nil
	}
	return 0, fmt.Errorf("invalid grain %q, expected length or width", str.S[len(kwPrefix):])
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// sexpBuild wraps a finished build so scripts can hold a reference.
type sexpBuild struct {
	build *Build
}

func (b *sexpBuild) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(build %q)", b.build.Name)
}
func (b *sexpBuild) Type() *zygo.RegisteredType { return nil }

// registerBuiltins installs the millwork builtins into a zygomys
// environment. Each successful call appends its build to out, in
// script order. Source must be preprocessed with preprocessSource so
// :keyword tokens arrive as recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, reg *cabinet.Registry, out *[]Build) {
	count := 0

	// run evaluates one builtin call against a registry definition.
	run := func(form string, def *cabinet.Definition, args []zygo.Sexp) (zygo.Sexp, error) {
		kw, err := parseArgs(form, args)
		if err != nil {
			return zygo.SexpNull, err
		}

		count++
		name := fmt.Sprintf("%s_%d", form, count)
		vals := cabinet.Values{}
		for key, sx := range kw {
			switch key {
			case "name":
				n, err := toString(sx)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: name: %w", form, err)
				}
				name = n
			case "grain":
				if _, ok := def.Param("grain"); !ok {
					return zygo.SexpNull, fmt.Errorf("%s: unknown parameter :grain", form)
				}
				g, err := toGrain(sx)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: grain: %w", form, err)
				}
				vals[key] = g
			default:
				if _, ok := def.Param(key); !ok {
					return zygo.SexpNull, fmt.Errorf("%s: unknown parameter :%s",
						form, strings.ReplaceAll(key, "_", "-"))
				}
				f, err := toFloat64(sx)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: %s: %w", form, key, err)
				}
				vals[key] = f
			}
		}

		result, err := def.Build(vals)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s %q: %w", form, name, err)
		}
		b := Build{Name: name, Result: result}
		*out = append(*out, b)
		return &sexpBuild{build: &b}, nil
	}

	// -----------------------------------------------------------------------
	// (panel :name "door" :length 0.6096 :width 0.3048
	//        :thickness 0.01905 :grain :length)
	// -----------------------------------------------------------------------
	env.AddFunction("panel", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return run("panel", reg.Panel(), args)
	})

	// -----------------------------------------------------------------------
	// (carcass :name "base" :width 0.6096 :height 0.762 :depth 0.6096
	//          :material-thickness 0.01905 :back-thickness 0.00635
	//          :back-inset 0.009525 :nailer-width 0.1016
	//          :include-top true :include-bottom true :include-back true)
	// -----------------------------------------------------------------------
	env.AddFunction("carcass", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return run("carcass", reg.Carcass(), args)
	})
}
