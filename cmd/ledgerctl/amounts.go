package main

import (
	"fmt"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/utils"
)

// parseAmount reads a major-unit decimal such as "119.00". An empty string is zero.
func parseAmount(flag, value string, exponent int) (int64, error) {
	if value == "" {
		return 0, nil
	}
	minor, ok := utils.ParseMajorUnits(value, exponent)
	if !ok {
		return 0, fmt.Errorf("--%s %q is not an amount with at most %d decimals", flag, value, exponent)
	}
	return minor, nil
}

// parseDate reads a YYYY-MM-DD flag, falling back to today (UTC) when empty.
func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return domain.NormalizeDate(time.Now().UTC()), nil
	}
	d, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be YYYY-MM-DD: %w", flag, err)
	}
	return d, nil
}

func (a *app) money(minor int64) string {
	return utils.FormatMinorUnits(minor, a.exponent)
}
