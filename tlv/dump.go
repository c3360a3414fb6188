package tlv

import (
	"encoding/hex"
	"fmt"
)

// Dump formats data as "(<len>) <hex>" for debug output.
func Dump(data []byte) string {
	return fmt.Sprintf("(%d) %s", len(data), hex.EncodeToString(data))
}

// String formats the record for debug output. The full value is
// included; dump selectively for large payloads.
func (r Record) String() string {
	return fmt.Sprintf("tag=0x%08X len=%d val=%s", r.Tag, r.Len(), hex.EncodeToString(r.Value))
}
