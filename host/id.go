// SPDX-License-Identifier: Unlicense OR MIT

package host

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// ID identifies a piece of state across frames. IDs are derived by
// hashing, so equal inputs produce equal IDs in every run.
type ID uint64

// NewID derives an ID from parts. Parts may be strings, integers,
// floats, booleans, IDs or fmt.Stringers.
func NewID(parts ...interface{}) ID {
	return ID(0).With(parts...)
}

// With derives a child ID of id.
func (id ID) With(parts ...interface{}) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h.Write(buf[:])
	for _, p := range parts {
		var b []byte
		switch p := p.(type) {
		case ID:
			b = binary.LittleEndian.AppendUint64(nil, uint64(p))
		case string:
			b = []byte(p)
		case int:
			b = binary.LittleEndian.AppendUint64(nil, uint64(p))
		case int64:
			b = binary.LittleEndian.AppendUint64(nil, uint64(p))
		case uint64:
			b = binary.LittleEndian.AppendUint64(nil, p)
		case float64:
			b = binary.LittleEndian.AppendUint64(nil, math.Float64bits(p))
		case bool:
			if p {
				b = []byte{1}
			} else {
				b = []byte{0}
			}
		case fmt.Stringer:
			b = []byte(p.String())
		default:
			b = []byte(fmt.Sprintf("%#v", p))
		}
		// Separate parts so that ("ab", "c") and ("a", "bc") differ.
		binary.LittleEndian.PutUint64(buf[:], uint64(len(b)))
		h.Write(buf[:])
		h.Write(b)
	}
	return ID(h.Sum64())
}

func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}
