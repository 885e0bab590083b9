package world

import (
	"sync"
	"testing"

	"example.com/office/world/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusFanOut(t *testing.T) {
	b := NewBus(nil)
	first := make(chan entities.Event, 1)
	second := make(chan entities.Event, 1)
	b.Subscribe(first)
	b.Subscribe(second)

	ev := entities.SatDown("meeting-room")
	b.Publish(ev)

	assert.Equal(t, ev, <-first)
	assert.Equal(t, ev, <-second)
}

func TestBusDropsForFullInbox(t *testing.T) {
	b := NewBus(nil)
	inbox := make(chan entities.Event, 1)
	b.Subscribe(inbox)

	b.Publish(entities.SatDown("workspace"))
	b.Publish(entities.StoodUp())

	assert.Equal(t, uint64(1), b.Dropped())
	assert.True(t, (<-inbox).IsSitting)
	assert.Empty(t, inbox)
}

func TestBusUnsubscribe(t *testing.T) {
	b := NewBus(nil)
	inbox := make(chan entities.Event, 1)
	b.Subscribe(inbox)
	b.Unsubscribe(inbox)

	b.Publish(entities.StoodUp())
	assert.Empty(t, inbox)
	assert.Zero(t, b.Len())

	b.Close()
	select {
	case inbox <- entities.StoodUp():
	default:
		t.Fatal("detached inbox should stay open")
	}
}

func TestBusClose(t *testing.T) {
	b := NewBus(nil)
	inbox := make(chan entities.Event, 1)
	b.Subscribe(inbox)

	b.Close()
	assert.NotPanics(t, b.Close)

	_, ok := <-inbox
	assert.False(t, ok)
	assert.NotPanics(t, func() { b.Publish(entities.StoodUp()) })

	late := make(chan entities.Event)
	b.Subscribe(late)
	_, ok = <-late
	assert.False(t, ok)
}

func TestBusPublishRacesClose(t *testing.T) {
	b := NewBus(nil)
	for range 8 {
		b.Subscribe(make(chan entities.Event, 1))
	}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				b.Publish(entities.StoodUp())
			}
		}()
	}
	b.Close()
	wg.Wait()

	require.Zero(t, b.Len())
}
