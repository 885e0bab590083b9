package scheduler

import (
	"container/heap"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobHeapBreaksTiesByInsertion(t *testing.T) {
	now := time.Now()
	h := &JobHeap{}
	heap.Init(h)

	heap.Push(h, &Job{Name: "third", NextRun: now, seq: 3})
	heap.Push(h, &Job{Name: "later", NextRun: now.Add(time.Millisecond), seq: 0})
	heap.Push(h, &Job{Name: "first", NextRun: now, seq: 1})
	heap.Push(h, &Job{Name: "second", NextRun: now, seq: 2})

	var order []string
	for h.Len() > 0 {
		order = append(order, heap.Pop(h).(*Job).Name)
	}
	assert.Equal(t, []string{"first", "second", "third", "later"}, order)
}
