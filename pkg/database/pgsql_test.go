package database_test

import (
	"context"
	"testing"

	"github.com/SscSPs/erp_ledger/pkg/database"
	"github.com/stretchr/testify/assert"
)

func TestNewPgxPool_RejectsBadURL(t *testing.T) {
	_, err := database.NewPgxPool(context.Background(), database.PoolOptions{})
	assert.ErrorContains(t, err, "cannot be empty")

	_, err = database.NewPgxPool(context.Background(), database.PoolOptions{URL: "postgres://%zz"})
	assert.ErrorContains(t, err, "parse database config")
}

func TestClosePgxPool_NilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { database.ClosePgxPool(nil, nil) })
}
