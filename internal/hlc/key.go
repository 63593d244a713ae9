package hlc

import (
	"cmp"
	"encoding/binary"
	"fmt"
)

// KeyLen is the size of an encoded timestamp sort key.
const KeyLen = 16

// WallReading constrains readings whose core type is uint64, which is
// what the fixed-width key layout requires. Both NanoTime and TickTime
// satisfy it.
type WallReading[T, D any] interface {
	~uint64
	Compare(T) int
	Sub(T) D
}

// AppendKey appends the 16-byte big-endian encoding of ts to dst:
// epoch as 4 bytes, reading as 8 bytes, count as 4 bytes. Byte order
// of encoded keys matches the ordering of the timestamps, so the keys
// sort correctly under bytes.Compare.
func AppendKey[T WallReading[T, D], D cmp.Ordered](dst []byte, ts Timestamp[T, D]) []byte {
	dst = binary.BigEndian.AppendUint32(dst, ts.Epoch)
	dst = binary.BigEndian.AppendUint64(dst, uint64(ts.Time))
	dst = binary.BigEndian.AppendUint32(dst, ts.Count)
	return dst
}

// Key returns the 16-byte sort key for ts.
func Key[T WallReading[T, D], D cmp.Ordered](ts Timestamp[T, D]) [KeyLen]byte {
	var key [KeyLen]byte
	AppendKey(key[:0], ts)
	return key
}

// ParseKey decodes a sort key produced by Key or AppendKey.
func ParseKey[T WallReading[T, D], D cmp.Ordered](key []byte) (Timestamp[T, D], error) {
	if len(key) != KeyLen {
		return Timestamp[T, D]{}, fmt.Errorf("timestamp key must be %d bytes, got %d", KeyLen, len(key))
	}
	return Timestamp[T, D]{
		Epoch: binary.BigEndian.Uint32(key[0:4]),
		Time:  T(binary.BigEndian.Uint64(key[4:12])),
		Count: binary.BigEndian.Uint32(key[12:16]),
	}, nil
}
