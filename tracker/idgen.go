package tracker

import "sync"

// IDGenerator holds a counter for generating the next incremental wave ID.
// It is injected into the ShapeFilter so id ownership is explicit rather
// than hidden in package state.  IDs are unique and strictly increasing for
// the generator's lifetime and are never reused.
type IDGenerator struct {
	id int64
	sync.Mutex
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GetNext returns the next incremental number
func (id *IDGenerator) GetNext() int64 {
	id.Lock()
	defer id.Unlock()
	id.id++
	return id.id
}
