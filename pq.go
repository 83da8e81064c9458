package dstar

import "container/heap"

type PriorityQueueItem struct {
	Cell         Cell
	Key          Key
	IndexInQueue int
}

type queueItems []*PriorityQueueItem

func (items queueItems) Len() int { return len(items) }
func (items queueItems) Less(i, j int) bool {
	if items[i].Key != items[j].Key {
		return items[i].Key.Less(items[j].Key)
	}
	return items[i].Cell.Less(items[j].Cell)
}
func (items queueItems) Swap(i, j int) {
	items[i], items[j] = items[j], items[i]
	items[i].IndexInQueue = i
	items[j].IndexInQueue = j
}

func (items *queueItems) Push(x any) {
	item := x.(*PriorityQueueItem)
	item.IndexInQueue = len(*items)
	*items = append(*items, item)
}

func (items *queueItems) Pop() any {
	old := *items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.IndexInQueue = -1
	*items = old[:n-1]
	return item
}

// PriorityQueue holds each cell at most once, ordered by the key it was last
// pushed with. Equal keys are ordered by cell so pops are deterministic.
type PriorityQueue struct {
	items   queueItems
	members map[Cell]*PriorityQueueItem
}

func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{members: make(map[Cell]*PriorityQueueItem)}
}

func (q *PriorityQueue) Len() int { return len(q.items) }

// Push inserts c with key k, or moves it to k if it is already queued.
func (q *PriorityQueue) Push(c Cell, k Key) {
	if item, ok := q.members[c]; ok {
		if item.Key != k {
			item.Key = k
			heap.Fix(&q.items, item.IndexInQueue)
		}
		return
	}
	item := &PriorityQueueItem{Cell: c, Key: k}
	heap.Push(&q.items, item)
	q.members[c] = item
}

// PopMin removes and returns the cell with the smallest key along with that
// key. It panics on an empty queue.
func (q *PriorityQueue) PopMin() (Cell, Key) {
	if len(q.items) == 0 {
		panic("dstar: pop from empty priority queue")
	}
	item := heap.Pop(&q.items).(*PriorityQueueItem)
	delete(q.members, item.Cell)
	return item.Cell, item.Key
}

// TopKey returns the smallest key without removing it. It panics on an empty
// queue.
func (q *PriorityQueue) TopKey() Key {
	if len(q.items) == 0 {
		panic("dstar: top key of empty priority queue")
	}
	return q.items[0].Key
}

func (q *PriorityQueue) Contains(c Cell) bool {
	_, ok := q.members[c]
	return ok
}

// Remove drops c from the queue if present.
func (q *PriorityQueue) Remove(c Cell) {
	item, ok := q.members[c]
	if !ok {
		return
	}
	heap.Remove(&q.items, item.IndexInQueue)
	delete(q.members, c)
}

func (q *PriorityQueue) Reset() {
	clear(q.items)
	q.items = q.items[:0]
	clear(q.members)
}

// Cells returns the queued cells in heap order. The first one pops next.
func (q *PriorityQueue) Cells() []Cell {
	cells := make([]Cell, 0, len(q.items))
	for _, item := range q.items {
		cells = append(cells, item.Cell)
	}
	return cells
}
