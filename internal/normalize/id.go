package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rcampos/grana/internal/models"
)

// TransactionID builds the stable identifier for an ingested row.
//
// Inputs, in order: origin key, raw date string, description, final
// signed amount, and the row's ordinal position in the parsed sequence.
// Re-parsing identical source text therefore yields identical ids, which
// is what makes re-sync idempotent. The ordinal disambiguates genuine
// duplicate rows (same purchase twice on one day).
func TransactionID(origin models.Origin, date, description, amount string, ordinal int) string {
	h := sha256.New()
	parts := []string{string(origin), date, description, amount, strconv.Itoa(ordinal)}
	h.Write([]byte(strings.Join(parts, "\x1f")))
	sum := h.Sum(nil)
	return fmt.Sprintf("%s-%s", origin, hex.EncodeToString(sum[:8]))
}

// ManualID mints the identifier for a new manual entry. The creation
// instant distinguishes entries; the id is preserved across edits.
func ManualID(now time.Time) string {
	return fmt.Sprintf("manual-%d", now.UnixNano())
}
