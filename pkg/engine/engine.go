// Package engine provides the Lisp scripting surface for the millwork
// builders. It wraps zygomys in a sandboxed environment; a script
// calls (panel ...) and (carcass ...) with keyword arguments matching
// the definition parameter interface, and evaluation produces the
// resulting builds.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/DoubleBridges/millnodes/pkg/cabinet"
)

// EvalError represents a non-fatal error encountered during
// evaluation, such as a parse error or a runtime error in the script.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Build is one named build produced by a script.
type Build struct {
	Name   string
	Result *cabinet.Build
}

// Engine wraps the zygomys interpreter. It is safe for concurrent
// use; each call to Evaluate creates a fresh sandboxed environment,
// while definitions are shared through the registry.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	registry   *cabinet.Registry
}

// NewEngine creates an Engine building through the given registry.
// A nil registry gets a fresh one.
func NewEngine(reg *cabinet.Registry) *Engine {
	if reg == nil {
		reg = cabinet.NewRegistry()
	}
	return &Engine{registry: reg}
}

// Registry returns the registry the engine builds through.
func (e *Engine) Registry() *cabinet.Registry {
	return e.registry
}

// Evaluate runs Lisp source and returns the builds it produced.
// Each call evaluates in a fresh zygomys sandbox for determinism.
//
// Return semantics:
//   - On success: builds + nil errors + nil error
//   - On parse/eval failure: nil + eval errors + nil error
//   - On fatal failure (timeout, panic): nil + nil + error
func (e *Engine) Evaluate(source string) ([]Build, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		builds, evalErrs, err := e.evaluate(source)
		ch <- evalResult{builds: builds, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) ([]Build, []EvalError, error) {
	// Empty source is a valid script that produces no builds.
	if strings.TrimSpace(source) == "" {
		return nil, nil, nil
	}

	// Sandbox mode keeps scripts away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	var builds []Build
	registerBuiltins(env, e.registry, &builds)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}

	return builds, nil, nil
}

// linePattern matches zygomys errors that include "Error on line N: ...".
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into EvalError values,
// extracting line numbers from the message where possible.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
