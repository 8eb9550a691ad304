package kv

import "bytes"

// Increment increments the given byte slice in place so that it becomes the
// next byte string of the same length in lexicographical order. When every
// byte is 0xff there is no same-length successor and a longer slice is
// returned instead, so the result always compares greater than the input.
func Increment(b []byte) []byte {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] > 0x00 {
			return b
		}
	}
	return append(bytes.Repeat([]byte{0xff}, len(b)), 0x01)
}
