package expression

import (
	"errors"
	"testing"
)

func TestIsPostfix(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"3 4 +", true},
		{"3 4 + 2 *", true},
		{"10 2 8 * + 3 -", true},
		{"1 + 1", false},
		{"2 * 3 - 4", false},
		{"(3 4 +)", false},
		{"x 1 + = 2", false},
		{"5", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			if got := IsPostfix(mustLex(t, tc.src)); got != tc.want {
				t.Fatalf("%q: expected %t, got %t", tc.src, tc.want, got)
			}
		})
	}
}

func TestFindVariable(t *testing.T) {
	name, found, err := FindVariable(mustLex(t, "2x + x = x / 2"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !found || name != "x" {
		t.Fatalf("expected variable x, got %q (found=%t)", name, found)
	}

	_, found, err = FindVariable(mustLex(t, "1 + 2"))
	if err != nil || found {
		t.Fatalf("expected no variable, got found=%t err=%v", found, err)
	}

	_, _, err = FindVariable(mustLex(t, "a + b"))
	if !errors.Is(err, ErrMultipleVariables) {
		t.Fatalf("expected %v, got %v", ErrMultipleVariables, err)
	}
}

func TestHasEqual(t *testing.T) {
	if !HasEqual(mustLex(t, "x = 1")) {
		t.Fatal("expected = to be found")
	}
	if HasEqual(mustLex(t, "x + 1")) {
		t.Fatal("did not expect = to be found")
	}
}
