package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/alekhya-chintada/skillmatrix/core"
)

// Key prefixes for different data types
const (
	profilePrefix      = "prof:"
	profileOrderPrefix = "proford:"
	vectorPrefix       = "vec:"
	vectorSeq          = "vecseq"
)

// makeProfileKey generates a key for a profile by storage ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s%d", profilePrefix, id))
}

// makeProfileOrderKey generates a key for the ingestion order index.
// Format: prefix + big-endian position
func makeProfileOrderKey(position uint64) []byte {
	buf := make([]byte, len(profileOrderPrefix)+8)
	offset := copy(buf, profileOrderPrefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], position)
	return buf
}

// makeVectorKey generates a key for a vector document by storage ID.
func makeVectorKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s%d", vectorPrefix, id))
}
