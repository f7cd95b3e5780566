package pool

// Pool is a fixed-capacity arena of optional slots indexed by small integer
// ids in [0, capacity). Ids are recycled: Alloc probes forward from the last
// id it handed out, wrapping at capacity, so low ids come back into use once
// freed. Worst case per allocation is O(capacity).
//
// Not safe for concurrent use. The game loop goroutine owns every pool.
type Pool[T any] struct {
	slots  []*T
	live   int
	cursor int
}

func New[T any](capacity int) *Pool[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool[T]{slots: make([]*T, capacity)}
}

// Alloc returns the first unused id at or after the cursor. The id stays free
// until Set is called with it. Returns false when every slot is live.
func (p *Pool[T]) Alloc() (int, bool) {
	if p.live >= len(p.slots) {
		return -1, false
	}
	for p.slots[p.cursor] != nil {
		p.cursor = (p.cursor + 1) % len(p.slots)
	}
	return p.cursor, true
}

// Set stores v under id. Storing nil is the same as Remove.
func (p *Pool[T]) Set(id int, v *T) {
	if id < 0 || id >= len(p.slots) {
		return
	}
	if v == nil {
		p.Remove(id)
		return
	}
	if p.slots[id] == nil {
		p.live++
	}
	p.slots[id] = v
}

func (p *Pool[T]) Get(id int) (*T, bool) {
	if id < 0 || id >= len(p.slots) {
		return nil, false
	}
	v := p.slots[id]
	return v, v != nil
}

func (p *Pool[T]) Has(id int) bool {
	_, ok := p.Get(id)
	return ok
}

// Remove frees id. Returns false if it was not live.
func (p *Pool[T]) Remove(id int) bool {
	if id < 0 || id >= len(p.slots) || p.slots[id] == nil {
		return false
	}
	p.slots[id] = nil
	p.live--
	return true
}

func (p *Pool[T]) Len() int   { return p.live }
func (p *Pool[T]) Cap() int   { return len(p.slots) }
func (p *Pool[T]) Full() bool { return p.live >= len(p.slots) }

// Each visits live slots in ascending id order. fn may remove any id,
// including the current one; slots freed ahead of the scan are skipped.
func (p *Pool[T]) Each(fn func(id int, v *T)) {
	for id := range p.slots {
		if v := p.slots[id]; v != nil {
			fn(id, v)
		}
	}
}

// Find returns the lowest live id whose value satisfies match.
func (p *Pool[T]) Find(match func(id int, v *T) bool) (int, *T, bool) {
	for id, v := range p.slots {
		if v != nil && match(id, v) {
			return id, v, true
		}
	}
	return -1, nil, false
}

// Reset frees every slot and rewinds the cursor to 0.
func (p *Pool[T]) Reset() {
	clear(p.slots)
	p.live = 0
	p.cursor = 0
}
