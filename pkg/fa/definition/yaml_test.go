package definition

import (
	"strings"
	"testing"

	"github.com/matzehuels/automata/pkg/errors"
	"github.com/matzehuels/automata/pkg/fa"
)

const endsWithBYAML = `
name: ends-with-b
alphabet: [a, b]
states: [0, 1]
initial: [0]
final: [1]
transition:
  - {from: 0, symbol: a, to: 0}
  - {from: 0, symbol: b, to: 0}
  - {from: 0, symbol: b, to: 1}
`

func TestParseYAML(t *testing.T) {
	def, err := ParseYAML([]byte(endsWithBYAML))
	if err != nil {
		t.Fatalf("ParseYAML() error: %v", err)
	}
	if def.Name != "ends-with-b" {
		t.Errorf("Name = %q", def.Name)
	}

	want, err := Parse([]byte(endsWithB))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := def.Automaton.String(), want.Automaton.String(); got != want {
		t.Errorf("YAML and TOML definitions differ:\n%s\nvs\n%s", got, want)
	}
}

func TestParseYAML_Epsilon(t *testing.T) {
	def, err := ParseYAML([]byte(`
alphabet: ["1"]
states: [0, 1]
transition:
  - {from: 0, symbol: "", to: 1}
  - {from: 1, symbol: 1, to: 0}
`))
	if err != nil {
		t.Fatalf("ParseYAML() error: %v", err)
	}
	a := def.Automaton
	if !a.HasTransition(0, fa.Epsilon, 1) || !a.HasTransition(1, '1', 0) {
		t.Errorf("transitions = %v", a.Transitions())
	}
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{"empty", "", errors.ErrCodeInvalidAutomaton},
		{"malformed", "alphabet: [a", errors.ErrCodeInvalidDefinition},
		{"unknown key", "alphabet: [a]\nstates: [0]\ncolour: red\n", errors.ErrCodeInvalidDefinition},
		{"wrong type", "alphabet: a\nstates: [0]\n", errors.ErrCodeInvalidDefinition},
		{"duplicate state", "alphabet: [a]\nstates: [1, 1]\n", errors.ErrCodeInvalidState},
		{"incomplete transition", "alphabet: [a]\nstates: [0]\ntransition:\n  - {from: 0, to: 0}\n", errors.ErrCodeInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.doc))
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (%v)", got, tt.code, err)
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.toml":       FormatTOML,
		"a.yaml":       FormatYAML,
		"dir/b.YML":    FormatYAML,
		"no-extension": FormatTOML,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestParseAs(t *testing.T) {
	if _, err := ParseAs([]byte(endsWithB), FormatTOML); err != nil {
		t.Errorf("ParseAs(toml) error: %v", err)
	}
	if _, err := ParseAs([]byte(endsWithBYAML), FormatYAML); err != nil {
		t.Errorf("ParseAs(yaml) error: %v", err)
	}
	_, err := ParseAs(nil, Format("json"))
	if !errors.Is(err, errors.ErrCodeInvalidDefinition) || !strings.Contains(err.Error(), "json") {
		t.Errorf("ParseAs(json) error = %v", err)
	}
}
