// Package localstore implements the typed repositories over the named
// key-value store. Every repository reads a whole JSON document, transforms
// it, and writes it back; writers on the same key serialize on a mutex so
// concurrent appends never lose records.
package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/verdantly/wellspring/internal/ports"
)

// decodeList unmarshals a stored JSON sequence. Malformed data degrades to
// an empty collection rather than failing the read: the worst case for a
// corrupted key is a fresh start, never an error path.
func decodeList[T any](data []byte, log ports.Logger, key string) []T {
	if len(data) == 0 {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		log.Error(fmt.Sprintf("malformed data under %q, treating as empty: %v", key, err))
		return []T{}
	}
	return out
}
