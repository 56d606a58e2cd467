package tekton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverwriteLocality(t *testing.T) {
	orig := make([]byte, 8)
	patch := []byte{0x11, 0x22, 0x33, 0x44}

	got := Overwrite(orig, patch, 2)

	assert.Equal(t, []byte{0x00, 0x00, 0x11, 0x22, 0x33, 0x44, 0x00, 0x00}, got)
	assert.Equal(t, make([]byte, 8), orig, "orig must not be mutated")
}

func TestPadRightAppendsFiller(t *testing.T) {
	got := PadRight([]byte{0x01, 0x02}, 5, 0xff)
	assert.Equal(t, []byte{0x01, 0x02, 0xff, 0xff, 0xff}, got)
}

func TestPadRightNeverTruncates(t *testing.T) {
	got := PadRight([]byte{0x01, 0x02, 0x03, 0x04}, 2, 0xff)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, got)
}

func TestPadRightIdempotent(t *testing.T) {
	once := PadRight([]byte{0x01, 0x02}, 5, 0xff)
	twice := PadRight(once, 5, 0xff)
	assert.Equal(t, once, twice)
}
