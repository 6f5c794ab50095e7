package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// EncodeEntryCursor creates a base64 encoded token from an entry's date and number.
// Entries are listed in (date, number) order so the pair is a stable position.
func EncodeEntryCursor(c domain.EntryCursor) string {
	tokenStr := fmt.Sprintf("%s|%d", c.Date.Format(domain.DateLayout), c.Number)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeEntryCursor parses a token produced by EncodeEntryCursor.
func DecodeEntryCursor(token string) (domain.EntryCursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return domain.EntryCursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return domain.EntryCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(domain.DateLayout, parts[0])
	if err != nil {
		return domain.EntryCursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	number, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || number < 0 {
		return domain.EntryCursor{}, fmt.Errorf("invalid pagination token format (number parse)")
	}

	return domain.EntryCursor{Date: date, Number: number}, nil
}

// NextCursor returns the token pointing after the last entry of a full page, or nil.
func NextCursor(entries []domain.JournalEntry, limit int) *string {
	if limit <= 0 || len(entries) < limit {
		return nil
	}
	last := entries[len(entries)-1]
	token := EncodeEntryCursor(domain.EntryCursor{Date: last.Date, Number: last.Number})
	return &token
}
