// Package lsb embeds and extracts a bitstream in the least-significant bits
// of carrier samples.
//
// # Bit order
//
// Bit b of the bitstream is bit 7-(b mod 8) of byte b/8 (MSB first). Bits
// are placed one per sample, walking frames in order and samples in order
// within each frame:
//
//	frame 0: s0 s1 s2 ... sN-1 | frame 1: s0 s1 ... | ...
//	bit:     0  1  2  ... N-1  |          N  N+1 ...
//
// Embedding sets sample = (sample & 0xFE) | bit and leaves every other bit
// untouched. Once the bitstream is exhausted the remaining samples and
// frames pass through unchanged.
//
// # Memory
//
// [Embed] pulls one frame, mutates it, and hands it to the sink before
// pulling the next. [Extract] reads the 64 header bits first, then exactly
// the bits the header promises, and never pulls frames past the end of the
// payload.
//
// # Thread Safety
//
// A [Cursor] or [BitReader] belongs to a single call. Nothing in this
// package keeps state between calls.
package lsb
