package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRunID_Valid verifies that run identifiers parse as UUIDs.
func TestNewRunID_Valid(t *testing.T) {
	id := NewRunID()
	require.NotEmpty(t, id)

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

// TestNewRunID_Unique verifies that consecutive identifiers differ.
func TestNewRunID_Unique(t *testing.T) {
	assert.NotEqual(t, NewRunID(), NewRunID())
}
