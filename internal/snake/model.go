package snake

import "errors"

// Status is the game state machine: Running <-> Paused, Running -> Lost.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Default spawn used by the game: a single cell near the center, heading right.
var (
	DefaultStart   = Position{X: 15, Y: 11}
	DefaultHeading = HeadingRight
)

var (
	ErrEmptyBody      = errors.New("snake: body needs at least one segment")
	ErrInvalidHeading = errors.New("snake: invalid heading")
)

// Model owns the snake body and headings. All body mutation goes through Tick.
type Model struct {
	body      *Body
	pending   Heading // applied on the next tick
	committed Heading // heading used by the last completed tick
	status    Status
}

// NewModel creates a one-segment snake at start. It panics if heading is
// not one of the four directions; use NewModelWithBody for untrusted input.
func NewModel(start Position, heading Heading) *Model {
	m, err := NewModelWithBody(heading, start)
	if err != nil {
		panic(err)
	}
	return m
}

// NewModelWithBody creates a model from segments listed head first. The
// heading counts as already committed, so its opposite is refused until the
// first tick.
func NewModelWithBody(heading Heading, segments ...Position) (*Model, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyBody
	}
	if !heading.Valid() {
		return nil, ErrInvalidHeading
	}
	return &Model{
		body:      NewBody(segments...),
		pending:   heading,
		committed: heading,
		status:    StatusRunning,
	}, nil
}

// RequestDirectionChange sets the pending heading unless it reverses the last
// committed heading. It reports whether the request was accepted.
func (m *Model) RequestDirectionChange(h Heading) bool {
	if !h.Valid() || h == m.committed.Opposite() {
		return false
	}
	m.pending = h
	return true
}

// Tick moves the snake one cell along the pending heading. When grew is
// false the tail is dropped so the length stays the same. The pending heading
// becomes the committed one. Tick does not consult the status; the caller
// decides when the snake moves.
func (m *Model) Tick(grew bool) []Position {
	next := m.body.Front().Add(m.pending.Delta())
	if !grew {
		m.body.PopBack()
	}
	m.body.PushFront(next)
	m.committed = m.pending
	return m.body.Slice()
}

// IsOnApple reports whether the head sits on apple.
func (m *Model) IsOnApple(apple Position) bool {
	return m.body.Front() == apple
}

// IsColliding reports whether the head is off the board or overlaps another
// segment. The scan is linear; the body never exceeds the board's 768 cells.
func (m *Model) IsColliding() bool {
	head := m.body.Front()
	if !head.InBounds() {
		return true
	}
	for i := 1; i < m.body.Len(); i++ {
		if m.body.At(i) == head {
			return true
		}
	}
	return false
}

// TogglePause flips between Running and Paused. Lost stays Lost.
func (m *Model) TogglePause() Status {
	switch m.status {
	case StatusRunning:
		m.status = StatusPaused
	case StatusPaused:
		m.status = StatusRunning
	}
	return m.status
}

// Lose moves the model to the terminal Lost state.
func (m *Model) Lose() {
	m.status = StatusLost
}

// Status returns the current state.
func (m *Model) Status() Status {
	return m.status
}

// Head returns the head position.
func (m *Model) Head() Position {
	return m.body.Front()
}

// Len returns the body length.
func (m *Model) Len() int {
	return m.body.Len()
}

// Body returns a copy of the body, head first.
func (m *Model) Body() []Position {
	return m.body.Slice()
}

// Occupies reports whether any segment covers p.
func (m *Model) Occupies(p Position) bool {
	return m.body.Contains(p)
}

// Heading returns the pending heading.
func (m *Model) Heading() Heading {
	return m.pending
}

// LastHeading returns the heading of the most recent tick.
func (m *Model) LastHeading() Heading {
	return m.committed
}

// Intner is the slice of *math/rand.Rand that apple placement needs.
type Intner interface {
	Intn(n int) int
}

// PlaceApple picks a cell uniformly over the whole board. Occupancy is not
// checked: the apple may land on the snake.
func PlaceApple(rng Intner) Position {
	return Position{X: rng.Intn(GridWidth), Y: rng.Intn(GridHeight)}
}
