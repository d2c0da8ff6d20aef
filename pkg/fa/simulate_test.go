package fa

import (
	"slices"
	"strings"
	"testing"
)

func TestMatch_SingleTransition(t *testing.T) {
	a := fixture{
		symbols: "a", states: []int{0, 1}, initial: []int{0}, final: []int{1},
		trans: []Transition{{0, 'a', 1}},
	}.build(t)

	for w, want := range map[string]bool{"a": true, "": false, "aa": false, "b": false} {
		if got := a.Match(w); got != want {
			t.Errorf("Match(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestMatch_OddB(t *testing.T) {
	a := oddB.build(t)
	tests := map[string]bool{
		"a":      false,
		"bbaba":  true,
		"abbaba": true,
		"b":      true,
		"aab":    true,
		"":       false,
	}
	for w, want := range tests {
		if got := a.Match(w); got != want {
			t.Errorf("Match(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestMatch_ManyPaths(t *testing.T) {
	a := aPlusB.build(t)
	long := strings.Repeat("a", 50)
	if a.Match(long) {
		t.Errorf("Match(a^50) = true")
	}
	if !a.Match(long[:49] + "b") {
		t.Errorf("Match(a^49 b) = false")
	}
}

func TestReadString(t *testing.T) {
	a := fixture{
		symbols: "a", states: []int{0, 1, 2}, initial: []int{0, 1}, final: []int{2},
		trans: []Transition{{0, 'a', 2}},
	}.build(t)

	tests := []struct {
		word string
		want []int
	}{
		{"", []int{0, 1}},
		{"a", []int{2}},
		{"aa", []int{}},
		{"b", []int{}},
		{" ", []int{}},
		{"\x00", []int{}},
	}
	for _, tt := range tests {
		got := a.ReadString(tt.word)
		if got == nil {
			t.Errorf("ReadString(%q) = nil, want non-nil", tt.word)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("ReadString(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestReadString_IgnoresEpsilon(t *testing.T) {
	a := fixture{
		symbols: "a", states: []int{0, 1, 2}, initial: []int{0}, final: []int{2},
		trans: []Transition{{0, Epsilon, 1}, {1, 'a', 2}},
	}.build(t)

	if got := a.ReadString(""); !slices.Equal(got, []int{0}) {
		t.Errorf("ReadString(\"\") = %v, want [0]", got)
	}
	if a.Match("a") {
		t.Error("Match(\"a\") = true, epsilon transitions must not be followed")
	}
}

func TestReadString_NoInitialState(t *testing.T) {
	a := fixture{symbols: "a", states: []int{0}, final: []int{0}}.build(t)
	if got := a.ReadString(""); got == nil || len(got) != 0 {
		t.Errorf("ReadString(\"\") = %v, want []", got)
	}
}
