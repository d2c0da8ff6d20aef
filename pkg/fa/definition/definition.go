// Package definition decodes automaton definition files.
//
// A definition is a TOML document listing the alphabet, the states, the
// initial and final states, and one [[transition]] table per transition:
//
//	name     = "ends-with-b"
//	alphabet = ["a", "b"]
//	states   = [0, 1]
//	initial  = [0]
//	final    = [1]
//
//	[[transition]]
//	from   = 0
//	symbol = "b"
//	to     = 1
//
// The same document can be written in YAML, with transition as a list of
// mappings; see [ParseYAML] and [ParseAs]. An empty symbol ("") labels an
// epsilon transition. Definitions are input only: the package has no encoder.
package definition

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/automata/pkg/errors"
	"github.com/matzehuels/automata/pkg/fa"
)

// Definition is a decoded definition file.
type Definition struct {
	// Name is the optional display name.
	Name string
	// Automaton is the automaton built from the file. It is always valid.
	Automaton *fa.Automaton
}

type document struct {
	Name        string       `toml:"name" yaml:"name"`
	Alphabet    []string     `toml:"alphabet" yaml:"alphabet"`
	States      []int64      `toml:"states" yaml:"states"`
	Initial     []int64      `toml:"initial" yaml:"initial"`
	Final       []int64      `toml:"final" yaml:"final"`
	Transitions []transition `toml:"transition" yaml:"transition"`
}

type transition struct {
	From   *int64  `toml:"from" yaml:"from"`
	Symbol *string `toml:"symbol" yaml:"symbol"`
	To     *int64  `toml:"to" yaml:"to"`
}

// Read decodes a definition from r. It does not close r.
func Read(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return Parse(data)
}

// Parse decodes a definition from data.
//
// Parse returns an *errors.Error when:
//   - the TOML is malformed or contains unknown keys (INVALID_DEFINITION)
//   - an alphabet entry is not a single printable character or is repeated (INVALID_SYMBOL)
//   - a state is negative, repeated, or referenced without being declared (INVALID_STATE)
//   - a transition is incomplete, uses an unknown symbol, or is repeated (INVALID_TRANSITION)
//   - the alphabet or the state list is empty (INVALID_AUTOMATON)
func Parse(data []byte) (*Definition, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidDefinition, "unknown keys: %s", strings.Join(keys, ", "))
	}

	return doc.definition()
}

func (d *document) definition() (*Definition, error) {
	a, err := d.build()
	if err != nil {
		return nil, err
	}
	return &Definition{Name: d.Name, Automaton: a}, nil
}

func (d *document) build() (*fa.Automaton, error) {
	if len(d.Alphabet) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidAutomaton, "alphabet must declare at least one symbol")
	}
	if len(d.States) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidAutomaton, "states must declare at least one state")
	}

	a := fa.New()
	for i, s := range d.Alphabet {
		r, err := parseSymbol(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSymbol, err, "alphabet[%d]", i)
		}
		if !a.AddSymbol(r) {
			return nil, errors.New(errors.ErrCodeInvalidSymbol, "alphabet[%d]: duplicate symbol %q", i, s)
		}
	}

	for i, id := range d.States {
		if err := errors.ValidateStateID(id); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidState, err, "states[%d]", i)
		}
		if !a.AddState(int(id)) {
			return nil, errors.New(errors.ErrCodeInvalidState, "states[%d]: duplicate state %d", i, id)
		}
	}

	if err := flag(a, "initial", d.Initial, a.SetStateInitial); err != nil {
		return nil, err
	}
	if err := flag(a, "final", d.Final, a.SetStateFinal); err != nil {
		return nil, err
	}

	for i, t := range d.Transitions {
		if err := addTransition(a, t); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTransition, err, "transition[%d]", i)
		}
	}
	return a, nil
}

// parseSymbol decodes a textual alphabet entry into its rune. The entry
// must be exactly one character accepted by [fa.IsValidSymbol]; the empty
// string is handled by callers that accept it as the epsilon label.
func parseSymbol(s string) (rune, error) {
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidSymbol, "symbol cannot be empty")
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, errors.New(errors.ErrCodeInvalidSymbol, "symbol %q is not valid UTF-8", s)
	}
	if size != len(s) {
		return 0, errors.New(errors.ErrCodeInvalidSymbol, "symbol %q must be a single character", s)
	}
	if !fa.IsValidSymbol(r) {
		return 0, errors.New(errors.ErrCodeInvalidSymbol, "symbol %q is not printable", s)
	}
	return r, nil
}

func flag(a *fa.Automaton, field string, ids []int64, set func(int)) error {
	for i, id := range ids {
		if id < 0 || id > errors.MaxStateID || !a.HasState(int(id)) {
			return errors.New(errors.ErrCodeInvalidState, "%s[%d]: state %d is not declared", field, i, id)
		}
		set(int(id))
	}
	return nil
}

func addTransition(a *fa.Automaton, t transition) error {
	if t.From == nil || t.To == nil || t.Symbol == nil {
		return errors.New(errors.ErrCodeInvalidTransition, "from, symbol and to are required")
	}
	for _, id := range []int64{*t.From, *t.To} {
		if id < 0 || id > errors.MaxStateID || !a.HasState(int(id)) {
			return errors.New(errors.ErrCodeInvalidTransition, "state %d is not declared", id)
		}
	}

	r := fa.Epsilon
	if *t.Symbol != "" {
		var err error
		if r, err = parseSymbol(*t.Symbol); err != nil {
			return err
		}
		if !a.HasSymbol(r) {
			return errors.New(errors.ErrCodeInvalidTransition, "symbol %q is not in the alphabet", *t.Symbol)
		}
	}
	if !a.AddTransition(int(*t.From), r, int(*t.To)) {
		return errors.New(errors.ErrCodeInvalidTransition, "duplicate transition %d --%s--> %d", *t.From, label(r), *t.To)
	}
	return nil
}

// label renders a transition symbol, showing epsilon as "ε".
func label(r rune) string {
	if r == fa.Epsilon {
		return "ε"
	}
	return string(r)
}
