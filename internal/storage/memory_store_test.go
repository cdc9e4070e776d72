package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_MissingBucket(t *testing.T) {
	m := NewMemoryStore()
	data, err := m.Read("library")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryStore_CopiesBytes(t *testing.T) {
	m := NewMemoryStore()
	in := []byte("[1]")
	require.NoError(t, m.Write("library", in))
	in[1] = '2'

	out, err := m.Read("library")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(out))

	out[1] = '3'
	again, _ := m.Read("library")
	assert.Equal(t, "[1]", string(again))
}
