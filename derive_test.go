package huffman

import (
	"strings"
	"testing"
)

func TestDerive(t *testing.T) {
	root, err := Build([]WeightedSymbol[string]{
		ws("B", 5.0/12.0),
		ws("C", 3.0/12.0),
		ws("A", 2.0/12.0),
		ws("D", 1.0/12.0),
		ws("E", 1.0/12.0),
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	tree, book := Derive(root)

	expectTree := strings.Join([]string{
		". (1.00)\n",
		"├── B (0.42) 0\n",
		"└── 1 (0.58)\n",
		"    ├── C (0.25) 10\n",
		"    └── 11 (0.33)\n",
		"        ├── A (0.17) 110\n",
		"        └── 111 (0.17)\n",
		"            ├── D (0.08) 1110\n",
		"            └── E (0.08) 1111\n",
	}, "")
	if expectTree != tree {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expectTree, tree)
	}

	expectCodes := map[string]Code{
		"B": "0",
		"C": "10",
		"A": "110",
		"D": "1110",
		"E": "1111",
	}
	for symbol, expect := range expectCodes {
		actual, found := book.Encode(symbol)
		if !found {
			t.Errorf("no code for %q", symbol)
			continue
		}
		if expect != actual {
			t.Errorf("wrong code for %q: expect %s, actual %s", symbol, expect, actual)
		}
	}
}

func TestDerive_NestedIndent(t *testing.T) {
	root, err := Build([]WeightedSymbol[string]{ws("a", 1), ws("b", 1), ws("c", 1), ws("d", 1)})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	tree, _ := Derive(root)

	expectTree := strings.Join([]string{
		". (4.00)\n",
		"├── 0 (2.00)\n",
		"│   ├── a (1.00) 00\n",
		"│   └── b (1.00) 01\n",
		"└── 1 (2.00)\n",
		"    ├── c (1.00) 10\n",
		"    └── d (1.00) 11\n",
	}, "")
	if expectTree != tree {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expectTree, tree)
	}
}

func TestDerive_SingleLeaf(t *testing.T) {
	root, err := Build([]WeightedSymbol[string]{ws("A", 0.7)})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	tree, book := Derive(root)
	if expect := "A (0.70)\n"; expect != tree {
		t.Errorf("wrong tree:\n\texpect: %q\n\tactual: %q", expect, tree)
	}
	if hc, found := book.Encode("A"); !found || hc != "" {
		t.Errorf("expected empty code, got %s (found=%v)", hc, found)
	}
}
