package classic

import "github.com/vovakirdan/tui-snake/internal/snake"

// Snapshot is a read-only copy of everything the renderer and replay checks
// need. It shares no memory with the game.
type Snapshot struct {
	Frame          uint64
	Ticks          uint64
	Status         snake.Status
	Heading        snake.Heading
	Body           []snake.Position // head first
	Apple          snake.Position
	Score          int
	ApplesEaten    int
	TicksPerSecond float64
}

// Head returns the head position.
func (s Snapshot) Head() snake.Position {
	return s.Body[0]
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:          g.frame,
		Ticks:          g.ticks,
		Status:         g.model.Status(),
		Heading:        g.model.LastHeading(),
		Body:           g.model.Body(),
		Apple:          g.apple,
		Score:          g.score,
		ApplesEaten:    g.applesEaten,
		TicksPerSecond: g.pacer.TicksPerSecond(),
	}
}
