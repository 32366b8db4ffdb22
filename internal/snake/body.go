package snake

// Body is a ring-buffer deque of positions with the head at the front.
// PushFront and PopBack are O(1) amortized; the buffer doubles when full.
type Body struct {
	buf  []Position
	head int // index of the front element in buf
	n    int
}

// NewBody builds a body from positions listed head first.
func NewBody(segments ...Position) *Body {
	b := &Body{buf: make([]Position, max(4, len(segments)))}
	for _, p := range segments {
		b.PushBack(p)
	}
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.n
}

// At returns segment i, counted from the head. It panics when i is out of range.
func (b *Body) At(i int) Position {
	if i < 0 || i >= b.n {
		panic("snake: body index out of range")
	}
	return b.buf[(b.head+i)%len(b.buf)]
}

// Front returns the head segment.
func (b *Body) Front() Position {
	return b.At(0)
}

// Back returns the tail segment.
func (b *Body) Back() Position {
	return b.At(b.n - 1)
}

// PushFront adds a new head.
func (b *Body) PushFront(p Position) {
	b.grow()
	b.head = (b.head - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.head] = p
	b.n++
}

// PushBack adds a new tail.
func (b *Body) PushBack(p Position) {
	b.grow()
	b.buf[(b.head+b.n)%len(b.buf)] = p
	b.n++
}

// PopBack removes and returns the tail. The body must not be empty.
func (b *Body) PopBack() Position {
	p := b.Back()
	b.n--
	return p
}

// PopFront removes and returns the head. The body must not be empty.
func (b *Body) PopFront() Position {
	p := b.Front()
	b.head = (b.head + 1) % len(b.buf)
	b.n--
	return p
}

// Contains reports whether any segment equals p.
func (b *Body) Contains(p Position) bool {
	for i := range b.n {
		if b.At(i) == p {
			return true
		}
	}
	return false
}

// Slice copies the segments out, head first.
func (b *Body) Slice() []Position {
	out := make([]Position, b.n)
	for i := range b.n {
		out[i] = b.At(i)
	}
	return out
}

func (b *Body) grow() {
	if b.n < len(b.buf) {
		return
	}
	buf := make([]Position, 2*len(b.buf))
	for i := range b.n {
		buf[i] = b.At(i)
	}
	b.buf = buf
	b.head = 0
}
