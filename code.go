package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as a string of '0' and '1'
// characters.  The first character is the first bit, i.e. the branch taken
// at the root of the tree.
type Code string

// MakeCode is a convenience function that constructs a Code from the low size
// bits of bits, most significant bit first.
func MakeCode(size byte, bits uint64) Code {
	if size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(size), 10) + "b"
	return Code(fmt.Sprintf(format, bits&(1<<size-1)))
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Append returns the Code formed by adding one more bit to this Code.
func (hc Code) Append(bit byte) Code {
	if bit == 0 {
		return hc + "0"
	}
	return hc + "1"
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code is a
// prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// IsValid reports whether this Code consists solely of '0' and '1'.
func (hc Code) IsValid() bool {
	for i := 0; i < len(hc); i++ {
		if hc[i] != '0' && hc[i] != '1' {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc == "" {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
