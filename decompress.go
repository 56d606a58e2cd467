package tekton

// DecompressedLevelHeader reports the screen count encoded in a 3-byte
// compressed level-data header, the inverse of
// CompressionMapper.CompressedLevelHeader (§4.F). header must be exactly
// 3 bytes: literal 0x01 0x00 followed by screens*2.
func DecompressedLevelHeader(header []byte) (screens int, err error) {
	if len(header) != 3 {
		return 0, &FieldError{Msg: "level data header must be exactly 3 bytes"}
	}
	if header[0] != 0x01 || header[1] != 0x00 {
		return 0, &FieldError{Msg: "level data header has an unrecognized signature"}
	}
	if header[2]%2 != 0 {
		return 0, &FieldError{Msg: "level data header's screen count is not even"}
	}
	return int(header[2]) / 2, nil
}

// Decompress walks a byte-oriented command-envelope field stream (the
// family CompressionMapper.Compress emits — §4.E, §4.F, §9) and returns the
// flattened uncompressed bytes it represents, along with the number of
// input bytes consumed. It stops as soon as it has produced wantBytes of
// output, leaving any trailing padding in data untouched.
func Decompress(data []byte, wantBytes int) (out []byte, consumed int, err error) {
	out = make([]byte, 0, wantBytes)

	for len(out) < wantBytes {
		if consumed >= len(data) {
			return nil, 0, &FieldError{Msg: "truncated compressed level data"}
		}

		cmd, numBytes, envLen, err := decodeEnvelope(data[consumed:])
		if err != nil {
			return nil, 0, err
		}
		body := data[consumed+envLen:]

		switch cmd {
		case CmdDirectCopy:
			if len(body) < numBytes {
				return nil, 0, &FieldError{Msg: "truncated direct-copy field"}
			}
			out = append(out, body[:numBytes]...)
			consumed += envLen + numBytes

		case CmdByteFill:
			if len(body) < 1 {
				return nil, 0, &FieldError{Msg: "truncated byte-fill field"}
			}
			for i := 0; i < numBytes; i++ {
				out = append(out, body[0])
			}
			consumed += envLen + 1

		case CmdWordFill:
			if len(body) < 2 {
				return nil, 0, &FieldError{Msg: "truncated word-fill field"}
			}
			w := [2]byte{body[0], body[1]}
			for i := 0; i < numBytes; i++ {
				out = append(out, w[i%2])
			}
			consumed += envLen + 2

		default:
			return nil, 0, &FieldError{Msg: "unrecognized field command"}
		}
	}

	if len(out) != wantBytes {
		return nil, 0, &FieldError{Msg: "decompressed field stream overshot the requested length"}
	}

	return out, consumed, nil
}
