package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_InvalidURL(t *testing.T) {
	t.Parallel()

	pool, err := NewPool(context.Background(), "postgres://user@localhost:notaport/db")

	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "parse database url")
}
