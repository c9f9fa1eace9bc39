package huffman

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"
)

func roundTo(x float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(x*scale) / scale
}

func TestNew_Empty(t *testing.T) {
	r, err := New([]WeightedSymbol[string](nil))
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if r != nil {
		t.Errorf("expected nil report")
	}
}

func TestNew_Duplicate(t *testing.T) {
	_, err := New([]WeightedSymbol[string]{ws("a", 1), ws("a", 1)})
	if !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("expected ErrDuplicateSymbol, got %v", err)
	}
}

func TestReport_AverageLength(t *testing.T) {
	type testRow struct {
		name   string
		input  []WeightedSymbol[string]
		expect float64
	}

	testData := [...]testRow{
		{
			name: "twelfths",
			input: []WeightedSymbol[string]{
				ws("B", 5.0/12.0),
				ws("C", 3.0/12.0),
				ws("A", 2.0/12.0),
				ws("D", 1.0/12.0),
				ws("E", 1.0/12.0),
			},
			expect: 2.08,
		},
		{
			name: "six-letters",
			input: []WeightedSymbol[string]{
				ws("A", 0.36),
				ws("B", 0.21),
				ws("C", 0.17),
				ws("D", 0.13),
				ws("E", 0.09),
				ws("F", 0.04),
			},
			expect: 2.39,
		},
		{
			name:   "single",
			input:  []WeightedSymbol[string]{ws("A", 0.7)},
			expect: 0,
		},
		{
			name:   "two-equal",
			input:  []WeightedSymbol[string]{ws("x", 0.5), ws("y", 0.5)},
			expect: 1,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			r, err := New(row.input)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			actual := roundTo(r.AverageLength(), 2)
			if actual != row.expect {
				t.Errorf("expected average length %v, got %v\n%s", row.expect, actual, r)
			}
		})
	}
}

func TestReport_SingleSymbol(t *testing.T) {
	r, err := New([]WeightedSymbol[string]{ws("A", 42)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if hc, found := r.Code("A"); !found || hc != "" {
		t.Errorf("expected empty code, got %s (found=%v)", hc, found)
	}
	if r.AverageLength() != 0 {
		t.Errorf("expected average length 0, got %v", r.AverageLength())
	}
	if r.MinSize() != 0 || r.MaxSize() != 0 {
		t.Errorf("expected sizes 0 .. 0, got %d .. %d", r.MinSize(), r.MaxSize())
	}
}

func TestReport_String(t *testing.T) {
	type testRow struct {
		name   string
		input  []WeightedSymbol[string]
		expect string
	}

	testData := [...]testRow{
		{
			name:  "ascii",
			input: []WeightedSymbol[string]{ws("a", 3), ws("bb", 1), ws("c", 1)},
			expect: strings.Join([]string{
				"a  (3) => 1",
				"bb (1) => 00",
				"c  (1) => 01",
			}, "\n"),
		},
		{
			name:  "wide",
			input: []WeightedSymbol[string]{ws("日", 1), ws("x", 1)},
			expect: strings.Join([]string{
				"日 (1) => 0",
				"x  (1) => 1",
			}, "\n"),
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			r, err := New(row.input)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			actual := r.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestReport_DebugString(t *testing.T) {
	r, err := New([]WeightedSymbol[string]{ws("a", 3), ws("bb", 1), ws("c", 1)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	expectDebug := strings.Join([]string{
		"Report{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 2\n",
		"\tTotalWeight() = 5.0000\n",
		"\tAverageLength() = 7.0000\n",
		"\tCode(a) = \"1\"\n",
		"\tCode(bb) = \"00\"\n",
		"\tCode(c) = \"01\"\n",
		"}\n",
	}, "")
	actualDebug := r.DebugString()
	if expectDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDebug, actualDebug)
	}
}

func TestReport_InputIsCopied(t *testing.T) {
	input := []WeightedSymbol[string]{ws("a", 3), ws("b", 1)}
	r, err := New(input)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	before := r.String()
	input[0].Weight = 100
	if after := r.String(); after != before {
		t.Errorf("report changed after mutating input:\n\tbefore: %s\n\tafter: %s", before, after)
	}
}

func TestReport_IntSymbols(t *testing.T) {
	r, err := New([]WeightedSymbol[int]{
		MakeWeightedSymbol(5, 45),
		MakeWeightedSymbol(0, 5),
		MakeWeightedSymbol(1, 9),
		MakeWeightedSymbol(2, 12),
		MakeWeightedSymbol(3, 13),
		MakeWeightedSymbol(4, 16),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	expectSizes := map[int]int{0: 4, 1: 4, 2: 3, 3: 3, 4: 3, 5: 1}
	for symbol, expect := range expectSizes {
		hc, _ := r.Code(symbol)
		if hc.Size() != expect {
			t.Errorf("symbol %d: expected size %d, got %d", symbol, expect, hc.Size())
		}
	}
}

// TestReport_Properties checks the structural properties of the code over
// many random distributions.
func TestReport_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(1952))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(40)
		input := make([]WeightedSymbol[string], n)
		for i := range input {
			weight := float64(rng.Intn(100))
			if rng.Intn(4) == 0 {
				weight = float64(rng.Intn(3))
			}
			input[i] = ws(fmt.Sprintf("s%d", i), weight)
		}

		r, err := New(input)
		if err != nil {
			t.Fatalf("trial %d: New failed: %v", trial, err)
		}
		book := r.CodeBook()

		if book.Len() != n {
			t.Errorf("trial %d: expected %d codes, got %d", trial, n, book.Len())
		}
		if !book.IsPrefixFree() {
			t.Errorf("trial %d: code book is not prefix-free:\n%s", trial, book.DebugString())
		}
		if diff := math.Abs(r.TotalWeight() - TotalWeight(input)); diff > 1e-9 {
			t.Errorf("trial %d: root weight %v != total %v", trial, r.TotalWeight(), TotalWeight(input))
		}
		for _, in := range input {
			hc, found := book.Encode(in.Symbol)
			if !found {
				t.Errorf("trial %d: no code for %s", trial, in.Symbol)
				continue
			}
			if !hc.IsValid() {
				t.Errorf("trial %d: invalid code %s", trial, hc)
			}
			if n > 1 && hc == "" {
				t.Errorf("trial %d: empty code for %s in a %d-symbol alphabet", trial, in.Symbol, n)
			}
			back, found := book.Decode(hc)
			if !found || back != in.Symbol {
				t.Errorf("trial %d: round trip of %s gave %q", trial, in.Symbol, back)
			}
		}

		// The entropy bound only holds when every symbol is possible.
		allPositive := true
		for _, in := range input {
			allPositive = allPositive && in.Weight > 0
		}
		total := TotalWeight(input)
		if allPositive {
			probs := make([]WeightedSymbol[string], n)
			for i, in := range input {
				probs[i] = ws(in.Symbol, in.Weight/total)
			}
			pr, err := New(probs)
			if err != nil {
				t.Fatalf("trial %d: New failed: %v", trial, err)
			}
			h := pr.Entropy()
			avg := pr.AverageLength()
			if avg < h-1e-9 || avg >= h+1+1e-9 {
				t.Errorf("trial %d: average length %v outside [%v, %v)", trial, avg, h, h+1)
			}
		}
	}
}
