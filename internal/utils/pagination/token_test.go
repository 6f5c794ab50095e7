package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEntryCursor(t *testing.T) {
	cursor := domain.EntryCursor{Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Number: 42}

	token := EncodeEntryCursor(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeEntryCursor(token)
	require.NoError(t, err)
	assert.True(t, cursor.Date.Equal(decoded.Date), "Date should match after decode")
	assert.Equal(t, cursor.Number, decoded.Number)
}

func TestDecodeEntryCursor_Invalid(t *testing.T) {
	_, err := DecodeEntryCursor("%%%not-base64")
	assert.Error(t, err)

	_, err = DecodeEntryCursor(rawToken("2024-01-01"))
	assert.Error(t, err, "missing number part")

	_, err = DecodeEntryCursor(rawToken("01/01/2024|3"))
	assert.Error(t, err, "bad date")

	_, err = DecodeEntryCursor(rawToken("2024-01-01|x"))
	assert.Error(t, err, "bad number")
}

func TestNextCursor(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	entries := []domain.JournalEntry{
		{Number: 1, Date: day},
		{Number: 2, Date: day},
	}

	assert.Nil(t, NextCursor(entries, 3), "short page has no next cursor")
	assert.Nil(t, NextCursor(entries, 0))

	next := NextCursor(entries, 2)
	require.NotNil(t, next)
	decoded, err := DecodeEntryCursor(*next)
	require.NoError(t, err)
	assert.Equal(t, int64(2), decoded.Number)
}

func rawToken(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}
