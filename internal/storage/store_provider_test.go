package storage

import (
	"testing"

	"cpd/internal/structures"
	"cpd/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreProvider_Memory(t *testing.T) {
	conf := &structures.Config{Store: structures.StoreConfig{Driver: structures.StoreDriverMemory}}
	store, err := NewStoreProvider(conf, plainCompression{}, &testutil.MockLogger{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
}

func TestNewStoreProvider_File(t *testing.T) {
	conf := &structures.Config{Store: structures.StoreConfig{Driver: structures.StoreDriverFile, Dir: t.TempDir()}}
	store, err := NewStoreProvider(conf, plainCompression{}, &testutil.MockLogger{})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)
}

func TestNewStoreProvider_UnreachableRedis(t *testing.T) {
	conf := &structures.Config{Store: structures.StoreConfig{
		Driver: structures.StoreDriverRedis,
		Redis:  structures.RedisConfig{Addr: "127.0.0.1:1"},
	}}
	store, err := NewStoreProvider(conf, plainCompression{}, &testutil.MockLogger{})
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewStoreProvider_UnknownDriver(t *testing.T) {
	conf := &structures.Config{Store: structures.StoreConfig{Driver: "sqlite"}}
	_, err := NewStoreProvider(conf, plainCompression{}, &testutil.MockLogger{})
	assert.Error(t, err)
}

func TestRedisStore_Key(t *testing.T) {
	r := &RedisStore{prefix: "cpd"}
	assert.Equal(t, "cpd:notifications.admin", r.key("notifications.admin"))
}
