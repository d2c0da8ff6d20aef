// Package pipeline runs automaton operations on definition files.
//
// The CLI goes through a [Runner] for everything that touches files: it
// loads definitions, applies an [Operation], renders the result listing and
// caches that listing keyed by the content hash of every input.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Apply(ctx, pipeline.Options{
//	    Operation: pipeline.OpDeterminize,
//	    Inputs:    []string{"nfa.toml"},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(res.Listing)
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/automata/pkg/errors"
	"github.com/matzehuels/automata/pkg/fa"
)

// Operation names a transformation applied by [Runner.Apply].
type Operation string

// Supported operations.
const (
	OpMirror             Operation = "mirror"
	OpComplete           Operation = "complete"
	OpComplement         Operation = "complement"
	OpDeterminize        Operation = "determinize"
	OpMinimizeMoore      Operation = "minimize-moore"
	OpMinimizeBrzozowski Operation = "minimize-brzozowski"
	OpPruneAccessible    Operation = "prune-accessible"
	OpPruneCoAccessible  Operation = "prune-coaccessible"
	OpProduct            Operation = "product"
)

type operation struct {
	arity int
	apply func(in []*fa.Automaton) *fa.Automaton
}

func unary(f func(*fa.Automaton) *fa.Automaton) operation {
	return operation{arity: 1, apply: func(in []*fa.Automaton) *fa.Automaton { return f(in[0]) }}
}

// prune applies an in-place pruning method to a copy of its input.
func prune(method func(*fa.Automaton)) operation {
	return unary(func(a *fa.Automaton) *fa.Automaton {
		c := a.Clone()
		method(c)
		return c
	})
}

var operations = map[Operation]operation{
	OpMirror:             unary(fa.Mirror),
	OpComplete:           unary(fa.Complete),
	OpComplement:         unary(fa.Complement),
	OpDeterminize:        unary(fa.Determinize),
	OpMinimizeMoore:      unary(fa.MinimizeMoore),
	OpMinimizeBrzozowski: unary(fa.MinimizeBrzozowski),
	OpPruneAccessible:    prune((*fa.Automaton).RemoveNonAccessibleStates),
	OpPruneCoAccessible:  prune((*fa.Automaton).RemoveNonCoAccessibleStates),
	OpProduct: {arity: 2, apply: func(in []*fa.Automaton) *fa.Automaton {
		return fa.Product(in[0], in[1])
	}},
}

// Operations returns every supported operation name, sorted.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for op := range operations {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

// UnaryOperations returns the operations taking a single input, sorted.
func UnaryOperations() []Operation {
	return slices.DeleteFunc(Operations(), func(op Operation) bool { return operations[op].arity != 1 })
}

// ParseOperation validates an operation name.
func ParseOperation(name string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := operations[op]; !ok {
		return "", errors.New(errors.ErrCodeInvalidOperation, "unknown operation %q (valid: %s)", name, joinOps(Operations()))
	}
	return op, nil
}

// Arity returns the number of inputs op takes, or 0 for unknown operations.
func (op Operation) Arity() int { return operations[op].arity }

func joinOps(ops []Operation) string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

// Options configures [Runner.Apply].
type Options struct {
	Operation Operation
	// Inputs are definition file paths, one per operand.
	Inputs []string
	// Refresh recomputes the result even when a cached listing exists.
	Refresh bool
}

// Validate checks the operation name and input count, normalizing the
// operation name.
func (o *Options) Validate() error {
	if o.Operation == "" {
		return errors.New(errors.ErrCodeInvalidOperation, "operation is required")
	}
	op, err := ParseOperation(string(o.Operation))
	if err != nil {
		return err
	}
	o.Operation = op
	if want := o.Operation.Arity(); len(o.Inputs) != want {
		return errors.New(errors.ErrCodeInvalidInput, "%s takes %d input(s), got %d", o.Operation, want, len(o.Inputs))
	}
	for i, in := range o.Inputs {
		if strings.TrimSpace(in) == "" {
			return errors.New(errors.ErrCodeInvalidInput, "input %d: path is empty", i)
		}
	}
	return nil
}

// Result is the outcome of [Runner.Apply].
type Result struct {
	// Automaton is the computed automaton; nil when served from cache.
	Automaton *fa.Automaton
	// Listing is the pretty-printed result.
	Listing string
	// Cached reports whether Listing came from the cache.
	Cached   bool
	Duration time.Duration
}
