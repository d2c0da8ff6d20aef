package cli

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/automata/pkg/fa"
)

func TestTransitionRows(t *testing.T) {
	headers, rows := transitionRows(endsWithAAutomaton())

	if want := []string{"state", "a", "b"}; !slices.Equal(headers, want) {
		t.Errorf("headers = %v, want %v", headers, want)
	}
	want := [][]string{
		{"→ 0", "0,1", "0"},
		{"* 1", "", ""},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if !slices.Equal(rows[i], want[i]) {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestTransitionRows_Epsilon(t *testing.T) {
	a := fa.New()
	a.AddSymbol('x')
	a.AddState(3)
	a.AddState(7)
	a.SetStateInitial(3)
	a.SetStateFinal(3)
	a.AddTransition(3, fa.Epsilon, 7)

	headers, rows := transitionRows(a)
	if want := []string{"state", "x", epsilonLabel}; !slices.Equal(headers, want) {
		t.Errorf("headers = %v, want %v", headers, want)
	}
	if want := []string{"→* 3", "", "7"}; !slices.Equal(rows[0], want) {
		t.Errorf("row 0 = %q, want %q", rows[0], want)
	}
	if want := []string{"7", "", ""}; !slices.Equal(rows[1], want) {
		t.Errorf("row 1 = %q, want %q", rows[1], want)
	}
}

func TestTransitionTable(t *testing.T) {
	out := transitionTable(endsWithAAutomaton(), []int{1})
	for _, want := range []string{"state", "→ 0", "* 1", "0,1"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatStates(t *testing.T) {
	tests := []struct {
		ids  []int
		want string
	}{
		{nil, "{}"},
		{[]int{4}, "{4}"},
		{[]int{0, 2, 5}, "{0, 2, 5}"},
	}
	for _, tt := range tests {
		if got := formatStates(tt.ids); got != tt.want {
			t.Errorf("formatStates(%v) = %q, want %q", tt.ids, got, tt.want)
		}
	}
}
