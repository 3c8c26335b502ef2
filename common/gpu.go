package common

import (
	"encoding/binary"
	"math"
)

// AppendFloats appends each value to buf as a little-endian float32, the byte order WGSL
// uniforms expect.
//
// Parameters:
//   - buf: the buffer to extend
//   - values: the values to append
//
// Returns:
//   - []byte: the extended buffer
func AppendFloats(buf []byte, values ...float32) []byte {
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}
