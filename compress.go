package tekton

import log "github.com/sirupsen/logrus"

// maxScreens is the room-size invariant from §3: width_screens * height_screens <= 50.
const maxScreens = 50

// CompressionMapper converts a TileGrid's flat uncompressed byte stream
// into the game's variable-length compressed stream (§4.F). It is the
// rate-decision engine: byte ranges are assigned greedily to
// WordFill, then ByteFill, then DirectCopy, in that fixed priority order;
// alternative encodings are not compared by output size.
type CompressionMapper struct {
	WidthScreens  int
	HeightScreens int
}

// CompressedLevelHeader returns the 3-byte level-data header: literal
// 0x01 0x00, then (width*height screens * 2) as one big-endian byte
// (§4.F).
func (m *CompressionMapper) CompressedLevelHeader() []byte {
	screens := m.WidthScreens * m.HeightScreens
	return []byte{0x01, 0x00, byte(screens * 2)}
}

// Compress maps uncompressed into a sequence of Fields and returns the
// level header followed by their concatenated encoded bytes. If maxLen is
// greater than zero, the result is right-padded with 0xFF to maxLen and
// ErrTooLarge is returned if the padded length would exceed maxLen
// (§4.F, §6).
func (m *CompressionMapper) Compress(uncompressed []byte, maxLen int) ([]byte, error) {
	if (m.WidthScreens * m.HeightScreens) > maxScreens {
		return nil, &RangeError{Field: "width_screens * height_screens", Value: m.WidthScreens * m.HeightScreens, Min: 1, Max: maxScreens}
	}

	fields := mapFields(uncompressed)

	out := m.CompressedLevelHeader()
	for _, f := range fields {
		log.WithFields(log.Fields{"field": fieldKind(f), "bytes": f.NumBytes()}).Debug("tekton: compressed field")
		out = append(out, f.EncodeBytes()...)
	}

	if maxLen <= 0 {
		return out, nil
	}
	if len(out) > maxLen {
		return nil, &TooLargeError{Got: len(out), Max: maxLen}
	}
	return PadRight(out, maxLen, 0xff), nil
}

func fieldKind(f Field) string {
	switch f.(type) {
	case *WordFillField:
		return "word_fill"
	case *ByteFillField:
		return "byte_fill"
	case *DirectCopyField:
		return "direct_copy"
	default:
		return "unknown"
	}
}

// mapFields assigns every byte of data to exactly one Field, in three
// passes over a parallel assignment slice. Later passes only claim slots
// still unassigned (§4.F).
func mapFields(data []byte) []Field {
	assignment := make([]Field, len(data))

	if len(data) > 0 {
		mapWordFills(data, assignment)
		mapByteFills(data, assignment)
		mapDirectCopies(data, assignment)
	}

	return coalesceAssignment(assignment)
}

// mapWordFills finds maximal runs where bytes alternate between two
// distinct values, and assigns a WordFill to any run strictly longer than
// 2 bytes (ground truth: the original compressor's ">2" check, §9).
func mapWordFills(data []byte, assignment []Field) {
	i := 0
	for i < len(data)-1 {
		w := [2]byte{data[i], data[i+1]}
		if w[0] == w[1] {
			i++
			continue
		}

		j := i
		for j <= len(data) {
			numBytes := j - i
			if numBytes == maxFieldBytes || j == len(data) || data[j] != w[numBytes%2] {
				break
			}
			j++
		}
		numBytes := j - i

		if numBytes > 2 {
			assign(assignment, i, numBytes, &WordFillField{Word: w, Count: numBytes})
			i = j
		} else {
			i++
		}
	}
}

// mapByteFills finds maximal runs of a single repeated byte over the
// still-unassigned slots and assigns a ByteFill to any run strictly longer
// than 2 bytes, never crossing an already-assigned slot (§4.F, §9).
func mapByteFills(data []byte, assignment []Field) {
	i := 0
	for i < len(data)-1 {
		b := data[i]
		j := i
		for j <= len(data) {
			numBytes := j - i
			if numBytes == maxFieldBytes || j == len(data) || data[j] != b || assignment[j] != nil {
				break
			}
			j++
		}
		numBytes := j - i

		if numBytes > 2 {
			assign(assignment, i, numBytes, &ByteFillField{Byte: b, Count: numBytes})
			i = j
		} else {
			i++
		}
	}
}

// mapDirectCopies coalesces every remaining unassigned run of slots into
// the smallest number of DirectCopyFields, each at most 1024 bytes. The
// surrounding loop always flushes a run before it would exceed 1024 bytes,
// so every DirectCopyField produced here has a valid length (§4.F).
func mapDirectCopies(data []byte, assignment []Field) {
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		n := end - start
		f := &DirectCopyField{Bytes: append([]byte(nil), data[start:end]...)}
		assign(assignment, start, n, f)
		start = -1
	}

	for i := 0; i < len(data); i++ {
		if assignment[i] != nil {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		} else if i-start == maxFieldBytes {
			flush(i)
			start = i
		}
	}
	flush(len(data))
}

func assign(assignment []Field, start, n int, f Field) {
	for i := start; i < start+n; i++ {
		assignment[i] = f
	}
}

// coalesceAssignment walks the assignment slice once and returns the
// stream of distinct field objects in order, with adjacent duplicate
// assignments (the same Field spanning multiple slots) coalesced by
// identity (§4.F).
func coalesceAssignment(assignment []Field) []Field {
	var out []Field
	var last Field
	for _, f := range assignment {
		if f != last {
			out = append(out, f)
			last = f
		}
	}
	return out
}
