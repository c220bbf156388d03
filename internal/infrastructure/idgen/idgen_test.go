package idgen

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_ProducesParseableUniqueIDs(t *testing.T) {
	g := UUID{}
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := g.NewID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestUUID_Prefix(t *testing.T) {
	id := UUID{Prefix: "usr-"}.NewID()
	assert.True(t, strings.HasPrefix(id, "usr-"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "usr-"))
	assert.NoError(t, err)
}

func TestSequence_IsDeterministic(t *testing.T) {
	g := NewSequence("id-")
	assert.Equal(t, "id-000001", g.NewID())
	assert.Equal(t, "id-000002", g.NewID())
	assert.Equal(t, "id-000003", g.NewID())
}

func TestSequence_ConcurrentUse(t *testing.T) {
	g := NewSequence("")
	const n = 200

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.NewID()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}

func TestNew(t *testing.T) {
	g, err := New("UUID", "")
	require.NoError(t, err)
	assert.IsType(t, UUID{}, g)

	g, err = New("", "p-")
	require.NoError(t, err)
	assert.IsType(t, UUID{}, g)

	g, err = New(" sequence ", "p-")
	require.NoError(t, err)
	assert.Equal(t, "p-000001", g.NewID())

	_, err = New("snowflake", "")
	assert.Error(t, err)
}
