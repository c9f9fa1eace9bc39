// Package freqlist reads symbol/weight lists from delimited text.
package freqlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/o1810156/huffman"
)

// DefaultDelimiter separates a symbol from its weight.
const DefaultDelimiter = ","

// List is a parsed symbol/weight list.
type List struct {
	Symbols []huffman.WeightedSymbol[string]

	// Defaulted holds the 1-based line numbers whose weight was missing or
	// malformed and was therefore taken as 0.
	Defaulted []int
}

// Parse reads one "symbol<delim>weight" pair per line. Blank lines are
// skipped. Everything before the first delimiter is the symbol, verbatim;
// the text after it up to any further delimiter is the weight. A missing or
// unparsable weight is recorded as 0.
func Parse(r io.Reader, delim string) (List, error) {
	if delim == "" {
		return List{}, fmt.Errorf("delimiter is empty")
	}
	var list List
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		symbol, rest, hasWeight := strings.Cut(line, delim)
		weightText, _, _ := strings.Cut(rest, delim)
		weight, err := strconv.ParseFloat(strings.TrimSpace(weightText), 64)
		if !hasWeight || err != nil {
			weight = 0
			list.Defaulted = append(list.Defaulted, lineNo)
		}
		list.Symbols = append(list.Symbols, huffman.MakeWeightedSymbol(symbol, weight))
	}
	if err := scanner.Err(); err != nil {
		return List{}, fmt.Errorf("failed to read frequency list: %w", err)
	}
	return list, nil
}

// LoadFile parses the file at path. A path of "-" reads stdin.
func LoadFile(path, delim string) (List, error) {
	if path == "-" {
		return Parse(os.Stdin, delim)
	}
	f, err := os.Open(path)
	if err != nil {
		return List{}, fmt.Errorf("failed to open frequency list: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Parse(f, delim)
}

// Normalize scales the weights so they sum to 1. Lists whose total weight is
// not positive are returned unchanged.
func (l List) Normalize() List {
	total := huffman.TotalWeight(l.Symbols)
	if !(total > 0) {
		return l
	}
	out := List{
		Symbols:   make([]huffman.WeightedSymbol[string], len(l.Symbols)),
		Defaulted: l.Defaulted,
	}
	for i, ws := range l.Symbols {
		out.Symbols[i] = huffman.MakeWeightedSymbol(ws.Symbol, ws.Weight/total)
	}
	return out
}
