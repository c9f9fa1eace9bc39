// Package huffman builds static Huffman prefix codes for a fixed set of
// weighted symbols.  It reports the code assigned to each symbol, a
// human-readable diagram of the code tree, and the expected code length.
//
// Only the code assignment is computed; nothing here encodes or decodes a
// bit stream.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//	Codes", Proceedings of the IRE, 1952.
package huffman
