package main

import (
	"testing"

	"github.com/objectionary/phie"
)

func TestFibonacciSeven(t *testing.T) {
	word, _, err := phie.Dataize(phie.Fibonacci(7), phie.DefaultConfig())
	if err != nil {
		t.Fatalf("Dataize: %v", err)
	}
	if word != 13 {
		t.Errorf("fibonacci(7) = %d, want 13", word)
	}
}

func TestFibonacciSmall(t *testing.T) {
	cases := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{5, 5},
		{6, 8},
	}
	for _, c := range cases {
		word, _, err := phie.Dataize(phie.Fibonacci(c.n), phie.DefaultConfig())
		if err != nil {
			t.Fatalf("Dataize(%d): %v", c.n, err)
		}
		if uint64(word) != c.want {
			t.Errorf("fibonacci(%d) = %d, want %d", c.n, word, c.want)
		}
	}
}
