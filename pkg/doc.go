// Package pkg provides the libraries behind the automata command.
//
// # Overview
//
// Automata builds, simulates and transforms finite automata. The pkg
// directory is organized into three areas:
//
//  1. [fa] - The automaton engine (states, transitions, simulation and constructions)
//  2. [fa/definition] - TOML and YAML definition files decoded into automata
//  3. [pipeline] - Orchestration (load → apply → render listing) with caching
//
// Supporting packages: [cache] stores rendered listings, [errors] carries
// structured error codes, [observability] exposes hooks for load, apply and
// cache events, and [buildinfo] holds version metadata.
//
// # Architecture
//
// The typical data flow through the CLI:
//
//	definition.toml / definition.yaml
//	         ↓
//	    [fa/definition] package (decode + validate)
//	         ↓
//	    [fa] package (mirror, complement, determinize, minimize, product...)
//	         ↓
//	    [pipeline] package (cache the rendered listing)
//	         ↓
//	    listing on stdout
//
// # Quick Start
//
// Build an automaton and minimize it:
//
//	import "github.com/matzehuels/automata/pkg/fa"
//
//	a := fa.New()
//	a.AddSymbol('a')
//	a.AddSymbol('b')
//	a.AddState(0)
//	a.AddState(1)
//	a.SetStateInitial(0)
//	a.SetStateFinal(1)
//	a.AddTransition(0, 'a', 0)
//	a.AddTransition(0, 'b', 0)
//	a.AddTransition(0, 'a', 1)
//
//	m := fa.MinimizeMoore(a)
//	fmt.Println(m.Match("aba"), m.CountStates()) // true 2
//
// Or run an operation on a definition file through the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Apply(ctx, pipeline.Options{
//	    Operation: pipeline.OpDeterminize,
//	    Inputs:    []string{"ends-with-a.toml"},
//	})
//	fmt.Print(res.Listing)
//
// [fa]: https://pkg.go.dev/github.com/matzehuels/automata/pkg/fa
// [fa/definition]: https://pkg.go.dev/github.com/matzehuels/automata/pkg/fa/definition
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/automata/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/automata/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/automata/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/automata/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/automata/pkg/buildinfo
package pkg
