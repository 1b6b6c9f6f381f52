package monitor

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharsaifi001-eng/NEAT-RE/internal/infrastructure/outbox"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/idgen"
	"github.com/atharsaifi001-eng/NEAT-RE/repository/memory"
)

func TestRefresh_ReportsOutboxAndStore(t *testing.T) {
	box, err := outbox.Open(filepath.Join(t.TempDir(), "outbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = box.Close() })

	msg, err := outbox.NewMessage(outbox.KindOTPDelivery, "9999999999", map[string]string{})
	require.NoError(t, err)
	_, err = box.Enqueue(msg)
	require.NoError(t, err)

	store := memory.NewStore(idgen.NewSequence())
	memory.Seed(store, time.Now())

	m := New(nil, box, store, 0, nil)
	status := m.Refresh()

	assert.True(t, status.Outbox)
	assert.Equal(t, 1, status.OutboxSize)
	assert.False(t, status.RedisInUse)
	assert.Equal(t, 2, status.Store.Listings)
	assert.True(t, status.Healthy())
	assert.Equal(t, status, m.GetStatus())
	m.Stop()
	m.Stop()
}

func TestRefresh_DisabledBackendsStayHealthy(t *testing.T) {
	status := New(nil, nil, nil, 0, nil).Refresh()
	assert.False(t, status.Outbox)
	assert.False(t, status.OutboxInUse)
	assert.True(t, status.Healthy())
}

func TestStatus_UnreachableDependencyIsUnhealthy(t *testing.T) {
	assert.False(t, Status{OutboxInUse: true}.Healthy())
	assert.False(t, Status{RedisInUse: true, OutboxInUse: true, Outbox: true}.Healthy())
	assert.True(t, Status{RedisInUse: true, Redis: true, OutboxInUse: true, Outbox: true}.Healthy())
}
