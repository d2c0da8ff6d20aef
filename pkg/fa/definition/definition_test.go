package definition

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/automata/pkg/errors"
	"github.com/matzehuels/automata/pkg/fa"
)

const endsWithB = `
name     = "ends-with-b"
alphabet = ["a", "b"]
states   = [0, 1]
initial  = [0]
final    = [1]

[[transition]]
from = 0
symbol = "a"
to = 0

[[transition]]
from = 0
symbol = "b"
to = 0

[[transition]]
from = 0
symbol = "b"
to = 1
`

func TestParse(t *testing.T) {
	def, err := Parse([]byte(endsWithB))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if def.Name != "ends-with-b" {
		t.Errorf("Name = %q, want %q", def.Name, "ends-with-b")
	}

	a := def.Automaton
	if !slices.Equal(a.Symbols(), []rune{'a', 'b'}) {
		t.Errorf("Symbols() = %q", a.Symbols())
	}
	if !slices.Equal(a.InitialStates(), []int{0}) || !slices.Equal(a.FinalStates(), []int{1}) {
		t.Errorf("initial=%v final=%v", a.InitialStates(), a.FinalStates())
	}
	if a.CountTransitions() != 3 {
		t.Errorf("CountTransitions() = %d, want 3", a.CountTransitions())
	}
	if !a.Match("aab") || a.Match("ba") {
		t.Error("decoded automaton does not accept words ending with b")
	}
}

func TestParse_Epsilon(t *testing.T) {
	def, err := Parse([]byte(`
alphabet = ["a"]
states = [0, 1]
initial = [0]

[[transition]]
from = 0
symbol = ""
to = 1
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !def.Automaton.HasTransition(0, fa.Epsilon, 1) {
		t.Error("empty symbol should decode to an epsilon transition")
	}
}

func TestRead(t *testing.T) {
	def, err := Read(strings.NewReader(endsWithB))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if def.Automaton.CountStates() != 2 {
		t.Errorf("CountStates() = %d, want 2", def.Automaton.CountStates())
	}
}

func TestParse_Errors(t *testing.T) {
	const header = "alphabet = [\"a\"]\nstates = [0, 1]\n"
	tests := []struct {
		name string
		doc  string
		code errors.Code
		msg  string
	}{
		{"malformed", "alphabet = [", errors.ErrCodeInvalidDefinition, "decode"},
		{"unknown key", header + "colour = \"red\"\n", errors.ErrCodeInvalidDefinition, "colour"},
		{"unknown transition key", header + "[[transition]]\nfrom = 0\nsymbol = \"a\"\nto = 1\nweight = 2\n",
			errors.ErrCodeInvalidDefinition, "weight"},
		{"empty alphabet", "alphabet = []\nstates = [0]\n", errors.ErrCodeInvalidAutomaton, "alphabet"},
		{"no states", "alphabet = [\"a\"]\n", errors.ErrCodeInvalidAutomaton, "states"},
		{"long symbol", "alphabet = [\"ab\"]\nstates = [0]\n", errors.ErrCodeInvalidSymbol, "alphabet[0]"},
		{"space symbol", "alphabet = [\" \"]\nstates = [0]\n", errors.ErrCodeInvalidSymbol, "alphabet[0]"},
		{"duplicate symbol", "alphabet = [\"a\", \"a\"]\nstates = [0]\n", errors.ErrCodeInvalidSymbol, "alphabet[1]"},
		{"negative state", "alphabet = [\"a\"]\nstates = [-1]\n", errors.ErrCodeInvalidState, "states[0]"},
		{"duplicate state", "alphabet = [\"a\"]\nstates = [2, 2]\n", errors.ErrCodeInvalidState, "states[1]"},
		{"undeclared initial", header + "initial = [5]\n", errors.ErrCodeInvalidState, "initial[0]"},
		{"undeclared final", header + "final = [0, 7]\n", errors.ErrCodeInvalidState, "final[1]"},
		{"undeclared endpoint", header + "[[transition]]\nfrom = 0\nsymbol = \"a\"\nto = 9\n",
			errors.ErrCodeInvalidTransition, "transition[0]"},
		{"unknown symbol", header + "[[transition]]\nfrom = 0\nsymbol = \"b\"\nto = 1\n",
			errors.ErrCodeInvalidTransition, "not in the alphabet"},
		{"missing symbol", header + "[[transition]]\nfrom = 0\nto = 1\n",
			errors.ErrCodeInvalidTransition, "required"},
		{"duplicate transition", header +
			"[[transition]]\nfrom = 0\nsymbol = \"a\"\nto = 1\n" +
			"[[transition]]\nfrom = 0\nsymbol = \"a\"\nto = 1\n",
			errors.ErrCodeInvalidTransition, "transition[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (%v)", got, tt.code, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rune
		wantErr bool
	}{
		{"letter", "a", 'a', false},
		{"digit", "0", '0', false},
		{"punctuation", "+", '+', false},
		{"non-ascii", "λ", 'λ', false},

		{"empty", "", 0, true},
		{"two runes", "ab", 0, true},
		{"space", " ", 0, true},
		{"tab", "\t", 0, true},
		{"epsilon sentinel", "\x00", 0, true},
		{"invalid utf-8", "\xff", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSymbol(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSymbol(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidSymbol) {
				t.Errorf("parseSymbol(%q) code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidSymbol)
			}
			if got != tt.want {
				t.Errorf("parseSymbol(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if err == nil && !fa.New().AddSymbol(got) {
				t.Errorf("parseSymbol(%q) accepted a symbol the automaton rejects", tt.input)
			}
		})
	}
}
