package store

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/logging"
)

type failingKV struct {
	getErr error
	setErr error
}

func (f failingKV) Get(context.Context, string) (string, error) { return "", f.getErr }
func (f failingKV) Set(context.Context, string, string) error   { return f.setErr }

func TestHistoryRecordMovesToFront(t *testing.T) {
	ctx := context.Background()
	h := NewHistoryStore(NewMemoryKV(), "", logging.Discard())

	h.Record(ctx, "Tokyo, Japan")
	h.Record(ctx, "Oslo, Norway")
	got := h.Record(ctx, "Tokyo, Japan")

	assert.Equal(t, []string{"Tokyo, Japan", "Oslo, Norway"}, got)
	assert.Equal(t, got, h.Entries())
}

func TestHistoryRecordCapsEntries(t *testing.T) {
	ctx := context.Background()
	h := NewHistoryStore(NewMemoryKV(), "", logging.Discard())

	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		h.Record(ctx, name)
	}

	assert.Equal(t, []string{"F", "E", "D", "C", "B"}, h.Entries())
}

func TestHistoryPersistsAcrossStores(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	NewHistoryStore(kv, "", logging.Discard()).Record(ctx, "Lima, Peru")

	raw, err := kv.Get(ctx, DefaultHistoryKey)
	require.NoError(t, err)
	assert.JSONEq(t, `["Lima, Peru"]`, raw)

	reloaded := NewHistoryStore(kv, "", logging.Discard())
	assert.Equal(t, []string{"Lima, Peru"}, reloaded.Load(ctx))
}

func TestHistoryLoadRepairsStoredValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, DefaultHistoryKey, `["A","B","A","C","D","E","F"]`))

	got := NewHistoryStore(kv, "", logging.Discard()).Load(ctx)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, got)
}

func TestHistoryLoadCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, DefaultHistoryKey, `{not json`))
	logger, hook := test.NewNullLogger()

	got := NewHistoryStore(kv, "", logger).Load(ctx)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	var storageErr *StorageError
	require.ErrorAs(t, hook.LastEntry().Data[logrus.ErrorKey].(error), &storageErr)
	assert.Equal(t, "parse", storageErr.Op)
}

func TestHistoryStorageFailuresAreRecovered(t *testing.T) {
	ctx := context.Background()
	logger, hook := test.NewNullLogger()
	h := NewHistoryStore(failingKV{getErr: errors.New("disk gone"), setErr: errors.New("quota exceeded")}, "", logger)

	assert.Empty(t, h.Load(ctx))

	got := h.Record(ctx, "Quito, Ecuador")
	assert.Equal(t, []string{"Quito, Ecuador"}, got, "in-memory history still updates")
	assert.Len(t, hook.AllEntries(), 2)
}
