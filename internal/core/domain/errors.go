package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
)

// ValidationKind identifies which entry rule was violated.
type ValidationKind string

const (
	TooFewLines      ValidationKind = "TOO_FEW_LINES"
	UnknownAccount   ValidationKind = "UNKNOWN_ACCOUNT"
	MixedOrEmptyLine ValidationKind = "MIXED_OR_EMPTY_LINE"
	AmountOutOfRange ValidationKind = "AMOUNT_OUT_OF_RANGE"
	Unbalanced       ValidationKind = "UNBALANCED"
	MissingField     ValidationKind = "MISSING_FIELD"
)

// ValidationError reports why an entry was refused. No write happens when it is returned.
type ValidationError struct {
	Kind ValidationKind
	// LineIndex is the zero-based offending line, or -1 when the error is entry-wide.
	LineIndex   int
	AccountCode string
	Field       string
	// Gap is total credit minus total debit for Unbalanced.
	Gap int64
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case TooFewLines:
		return "journal entry needs at least two lines"
	case UnknownAccount:
		return fmt.Sprintf("line %d: account %q is unknown, inactive or not postable", e.LineIndex+1, e.AccountCode)
	case MixedOrEmptyLine:
		return fmt.Sprintf("line %d: exactly one of debit or credit must be positive", e.LineIndex+1)
	case AmountOutOfRange:
		return fmt.Sprintf("line %d: amount takes the entry totals out of range", e.LineIndex+1)
	case Unbalanced:
		return fmt.Sprintf("journal entry does not balance: credit minus debit is %d", e.Gap)
	case MissingField:
		return fmt.Sprintf("journal entry field %q is required", e.Field)
	}
	return string(e.Kind)
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidation
}

// NewLineError builds a ValidationError tied to one line.
func NewLineError(kind ValidationKind, index int, accountCode string) *ValidationError {
	return &ValidationError{Kind: kind, LineIndex: index, AccountCode: accountCode}
}

// NewEntryError builds an entry-wide ValidationError.
func NewEntryError(kind ValidationKind) *ValidationError {
	return &ValidationError{Kind: kind, LineIndex: -1}
}

// AsValidationError extracts a *ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ConfigErrorKind identifies why a configuration update was refused.
type ConfigErrorKind string

const InvalidAccountReference ConfigErrorKind = "INVALID_ACCOUNT_REFERENCE"

// ConfigError lists every slot that failed to resolve to a postable account.
type ConfigError struct {
	Kind  ConfigErrorKind
	Slots map[ConfigSlot]string
}

func (e *ConfigError) Error() string {
	parts := make([]string, 0, len(e.Slots))
	for _, slot := range AllConfigSlots {
		if code, ok := e.Slots[slot]; ok {
			parts = append(parts, fmt.Sprintf("%s=%q", slot, code))
		}
	}
	return "invalid account reference: " + strings.Join(parts, ", ")
}

func (e *ConfigError) Unwrap() error {
	return apperrors.ErrValidation
}

// ErrMalformedEvent is returned when a business event cannot be turned into a balanced entry.
var ErrMalformedEvent = fmt.Errorf("malformed business event: %w", apperrors.ErrValidation)

// MalformedEventError carries the reason an event was refused.
type MalformedEventError struct {
	EventType EventType
	Reason    string
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed %s event: %s", e.EventType, e.Reason)
}

func (e *MalformedEventError) Unwrap() error {
	return ErrMalformedEvent
}

// ErrAccountReferenced is returned when deactivating an account that posted lines still use.
var ErrAccountReferenced = fmt.Errorf("account is referenced by posted entries: %w", apperrors.ErrConflict)

// ErrAccountConfigured is returned when deactivating an account an enabled configuration slot points to.
var ErrAccountConfigured = fmt.Errorf("account is referenced by the accounting configuration: %w", apperrors.ErrConflict)

// ErrAmountOverflow is returned when an aggregate over posted amounts does not fit in minor units.
var ErrAmountOverflow = fmt.Errorf("amount total out of range: %w", apperrors.ErrValidation)

// ErrAlreadyReversed is returned when reversing an entry twice or reversing a reversal.
var ErrAlreadyReversed = fmt.Errorf("entry already reversed: %w", apperrors.ErrConflict)
