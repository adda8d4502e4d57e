package realtime_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wholesale-api/internal/infrastructure/realtime"
)

func recv(t *testing.T, s *realtime.Subscription) realtime.Message {
	t.Helper()
	select {
	case m, ok := <-s.C():
		require.True(t, ok, "canal cerrado")
		return m
	case <-time.After(time.Second):
		t.Fatal("no se recibió el evento")
		return realtime.Message{}
	}
}

func assertEmpty(t *testing.T, s *realtime.Subscription) {
	t.Helper()
	select {
	case m := <-s.C():
		t.Fatalf("evento inesperado: %+v", m)
	default:
	}
}

func TestBroadcast_TodosLosSuscriptoresRecibenUnaVez(t *testing.T) {
	hub := realtime.NewHub(4, nil)
	a, b, c := hub.Subscribe(), hub.Subscribe(), hub.Subscribe()
	defer a.Close()
	defer b.Close()
	defer c.Close()

	require.NoError(t, hub.Broadcast("inventoryUpdate", map[string]any{"productId": "p1", "newQuantity": 7}))

	for _, s := range []*realtime.Subscription{a, b, c} {
		m := recv(t, s)
		assert.Equal(t, "inventoryUpdate", m.Event)
		assert.JSONEq(t, `{"productId":"p1","newQuantity":7}`, string(m.Data))
		assertEmpty(t, s)
	}
}

func TestBroadcast_SinReplayParaSuscriptoresTardios(t *testing.T) {
	hub := realtime.NewHub(4, nil)
	early := hub.Subscribe()
	defer early.Close()

	require.NoError(t, hub.Broadcast("inventoryUpdate", 1))
	late := hub.Subscribe()
	defer late.Close()

	recv(t, early)
	assertEmpty(t, late)
}

func TestBroadcast_BufferLlenoNoBloquea(t *testing.T) {
	hub := realtime.NewHub(1, nil)
	slow := hub.Subscribe()
	defer slow.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			_ = hub.Broadcast("inventoryUpdate", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast bloqueó con un suscriptor lento")
	}
	m := recv(t, slow)
	var n int
	require.NoError(t, json.Unmarshal(m.Data, &n))
	assert.Equal(t, 0, n)
	assertEmpty(t, slow)
}

func TestClose_DaDeBajaYEsIdempotente(t *testing.T) {
	hub := realtime.NewHub(0, nil)
	s := hub.Subscribe()
	assert.Equal(t, 1, hub.Count())

	s.Close()
	s.Close()
	assert.Equal(t, 0, hub.Count())

	_, ok := <-s.C()
	assert.False(t, ok)
	require.NoError(t, hub.Broadcast("inventoryUpdate", 1))
}

func TestBroadcast_ConcurrenteConAltasYBajas(t *testing.T) {
	hub := realtime.NewHub(8, nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s := hub.Subscribe()
			s.Close()
		}()
		go func(i int) {
			defer wg.Done()
			_ = hub.Broadcast("inventoryUpdate", i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, hub.Count())
}

func TestBroadcast_PayloadNoSerializable(t *testing.T) {
	hub := realtime.NewHub(1, nil)
	err := hub.Broadcast("inventoryUpdate", make(chan int))
	assert.Error(t, err)
}
