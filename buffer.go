package tekton

// Overwrite returns orig with patch spliced in starting at start, replacing
// existing bytes rather than inserting (§4.B). The input is never mutated;
// total length is preserved.
func Overwrite(orig, patch []byte, start int) []byte {
	out := make([]byte, len(orig))
	copy(out, orig)
	copy(out[start:], patch)
	return out
}

// PadRight appends filler bytes to buf until it is at least minLen long.
// It never truncates an already-long-enough buffer (§4.B).
func PadRight(buf []byte, minLen int, filler byte) []byte {
	if len(buf) >= minLen {
		out := make([]byte, len(buf))
		copy(out, buf)
		return out
	}
	out := make([]byte, minLen)
	copy(out, buf)
	for i := len(buf); i < minLen; i++ {
		out[i] = filler
	}
	return out
}
