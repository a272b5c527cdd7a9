package format

import (
	"fmt"
	"strings"
)

// DefaultPrefix is used when no bill-number prefix is configured.
const DefaultPrefix = "INV"

// seqWidth is the minimum width of the zero-padded sequence part.
// Sequences past 9999 widen instead of truncating.
const seqWidth = 4

// BillNumber renders a bill number such as INV-0001 from a prefix and
// a monotonic sequence value.
func BillNumber(prefix string, seq int64) (string, error) {
	if seq <= 0 {
		return "", fmt.Errorf("invalid bill sequence: %d", seq)
	}

	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return fmt.Sprintf("%s-%0*d", prefix, seqWidth, seq), nil
}
