package outbox

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "outbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_EnqueueBatchAck(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)

	second, err := NewMessage(KindKYCReview, "DOC-2", map[string]string{"doc_type": "PAN"})
	require.NoError(t, err)
	second.EnqueuedAt = base.Add(time.Second)
	_, err = store.Enqueue(second)
	require.NoError(t, err)

	first, err := NewMessage(KindOTPDelivery, "9999999999", map[string]string{"code": "123456"})
	require.NoError(t, err)
	first.EnqueuedAt = base
	_, err = store.Enqueue(first)
	require.NoError(t, err)

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	batch, err := store.Batch(10)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, KindOTPDelivery, batch[0].Kind)
	assert.Equal(t, "DOC-2", batch[1].Reference)

	var payload map[string]string
	require.NoError(t, batch[0].Decode(&payload))
	assert.Equal(t, "123456", payload["code"])

	require.NoError(t, store.Ack(batch[0]))
	size, err = store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestStore_RetryCountsAttempts(t *testing.T) {
	store := openTestStore(t)

	msg, err := NewMessage(KindPayoutRequest, "COM-1", map[string]float64{"net": 30000})
	require.NoError(t, err)
	msg, err = store.Enqueue(msg)
	require.NoError(t, err)

	_, err = store.Retry(msg, errors.New("gateway down"))
	require.NoError(t, err)

	batch, err := store.Batch(0)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, msg.ID, batch[0].ID)
	assert.Equal(t, 1, batch[0].Attempts)
	assert.Equal(t, "gateway down", batch[0].LastError)
}

func TestStore_NilIsNotOpen(t *testing.T) {
	var store *Store
	_, err := store.Size()
	assert.Error(t, err)
	assert.NoError(t, store.Close())
}

func TestStore_RetryKeepsMessageWhenRewriteFails(t *testing.T) {
	store := openTestStore(t)

	msg, err := NewMessage(KindKYCReview, "DOC-1", map[string]string{"doc_type": "PAN"})
	require.NoError(t, err)
	msg, err = store.Enqueue(msg)
	require.NoError(t, err)

	broken := msg
	broken.Payload = json.RawMessage("{")
	_, err = store.Retry(broken, errors.New("provider timeout"))
	require.Error(t, err)

	batch, err := store.Batch(0)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, msg.ID, batch[0].ID)
	assert.Equal(t, 0, batch[0].Attempts)
}

func TestStore_RetryReplacesOriginalEntry(t *testing.T) {
	store := openTestStore(t)

	msg, err := NewMessage(KindOTPDelivery, "a@b.c", map[string]string{"code": "123456"})
	require.NoError(t, err)
	msg.EnqueuedAt = time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)
	msg, err = store.Enqueue(msg)
	require.NoError(t, err)

	retried, err := store.Retry(msg, nil)
	require.NoError(t, err)
	assert.NotEqual(t, msg.key, retried.key)

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}
