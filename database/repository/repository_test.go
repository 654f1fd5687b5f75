package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStores(t *testing.T) {
	stores, err := NewStores(BackendMemory, nil)
	require.NoError(t, err)
	assert.NotNil(t, stores.Meetings)
	assert.NotNil(t, stores.Users)

	_, err = NewStores(BackendMongo, nil)
	assert.Error(t, err)

	_, err = NewStores("postgres", nil)
	assert.Error(t, err)
}
