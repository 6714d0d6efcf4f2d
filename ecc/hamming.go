// Package ecc implements the Hamming(7,4) code used to protect audio
// payload bits against single-bit damage per codeword.
//
// Each 4-bit nibble d1..d4 becomes the 7-bit codeword p1 p2 d1 p3 d2 d3 d4
// with p1=d1^d2^d4, p2=d1^d3^d4 and p3=d2^d3^d4. Bits are carried one per
// byte, each byte holding 0 or 1.
package ecc

import (
	"errors"
	"fmt"
)

// CodewordBits is the length of one codeword in bits.
const CodewordBits = 7

// ErrCodewordLength indicates an encoded bit slice that is not a whole
// number of bytes, two codewords each.
var ErrCodewordLength = errors.New("encoded bits are not a whole number of bytes")

// EncodedBits returns the number of codeword bits produced for n data bytes.
func EncodedBits(n int) int {
	return n * 2 * CodewordBits
}

// BytesToBits expands data into MSB-first bits.
func BytesToBits(data []byte) []byte {
	out := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			out = append(out, (b>>uint(i))&1)
		}
	}
	return out
}

// BitsToBytes packs MSB-first bits into bytes. A trailing partial byte is
// dropped.
func BitsToBytes(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var b byte
		for _, bit := range bits[i*8 : i*8+8] {
			b = b<<1 | bit&1
		}
		out[i] = b
	}
	return out
}

// Encode expands data into Hamming(7,4) codeword bits, high nibble first.
func Encode(data []byte) []byte {
	bits := BytesToBits(data)
	out := make([]byte, 0, EncodedBits(len(data)))
	for i := 0; i < len(bits); i += 4 {
		d1, d2, d3, d4 := bits[i], bits[i+1], bits[i+2], bits[i+3]
		out = append(out,
			d1^d2^d4,
			d1^d3^d4,
			d1,
			d2^d3^d4,
			d2, d3, d4,
		)
	}
	return out
}

// Decode corrects at most one flipped bit per codeword and returns the
// data bytes together with the number of corrected codewords.
func Decode(bits []byte) ([]byte, int, error) {
	if len(bits)%(2*CodewordBits) != 0 {
		return nil, 0, fmt.Errorf("%w: %d bits", ErrCodewordLength, len(bits))
	}

	data := make([]byte, 0, len(bits)/CodewordBits*4)
	corrected := 0
	var cw [CodewordBits]byte
	for i := 0; i < len(bits); i += CodewordBits {
		for j := range cw {
			cw[j] = bits[i+j] & 1
		}
		s1 := cw[0] ^ cw[2] ^ cw[4] ^ cw[6]
		s2 := cw[1] ^ cw[2] ^ cw[5] ^ cw[6]
		s3 := cw[3] ^ cw[4] ^ cw[5] ^ cw[6]
		if syndrome := s3<<2 | s2<<1 | s1; syndrome != 0 {
			cw[syndrome-1] ^= 1
			corrected++
		}
		data = append(data, cw[2], cw[4], cw[5], cw[6])
	}
	return BitsToBytes(data), corrected, nil
}
