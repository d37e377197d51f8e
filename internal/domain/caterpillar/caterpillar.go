// Package caterpillar implements the rules of a grid snake game driven by
// a movement tick that speeds up every time a fruit is eaten.
package caterpillar

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/younwookim/bqdemos/internal/timing"
)

// Direction is a heading on the grid. NoDirection means no key is held.
type Direction int

const (
	NoDirection Direction = iota
	Right
	Left
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	case Down:
		return Up
	default:
		return NoDirection
	}
}

// Point is a grid cell. Y grows downward.
type Point struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (p Point) Step(d Direction) Point {
	switch d {
	case Right:
		return Point{p.X + 1, p.Y}
	case Left:
		return Point{p.X - 1, p.Y}
	case Up:
		return Point{p.X, p.Y - 1}
	case Down:
		return Point{p.X, p.Y + 1}
	default:
		return p
	}
}

// Rules tune the game.
type Rules struct {
	Squares     int
	InitialTick time.Duration
	SpeedFactor float64
	FruitScore  int
}

// DefaultRules returns a 16x16 grid with a 200ms tick shrinking by 10% per fruit.
func DefaultRules() Rules {
	return Rules{
		Squares:     16,
		InitialTick: 200 * time.Millisecond,
		SpeedFactor: 0.9,
		FruitScore:  100,
	}
}

// Validate checks the rules.
func (r Rules) Validate() error {
	if r.Squares < 2 {
		return fmt.Errorf("squares must be at least 2, got %d", r.Squares)
	}
	if r.InitialTick <= 0 {
		return fmt.Errorf("initial tick must be positive, got %s", r.InitialTick)
	}
	if r.SpeedFactor <= 0 || r.SpeedFactor > 1 {
		return fmt.Errorf("speed factor must be in (0, 1], got %g", r.SpeedFactor)
	}
	return nil
}

// Game is one round. The caterpillar starts in the top-left corner heading right.
type Game struct {
	rules Rules
	seed  int64
	rng   *rand.Rand

	head   Point
	body   []Point // body[0] is the segment right behind the head
	dir    Direction
	queued Direction
	locked bool

	fruit    Point
	score    int
	tick     time.Duration
	lastMove timing.Timestamp
	over     bool
}

// NewGame starts a round. Panics on invalid rules.
func NewGame(rules Rules, seed int64, now timing.Timestamp) *Game {
	if err := rules.Validate(); err != nil {
		panic("caterpillar: " + err.Error())
	}
	g := &Game{
		rules:    rules,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		dir:      Right,
		tick:     rules.InitialTick,
		lastMove: now,
	}
	g.fruit = g.randomCell()
	return g
}

func (g *Game) randomCell() Point {
	return Point{g.rng.Intn(g.rules.Squares), g.rng.Intn(g.rules.Squares)}
}

// Steer reads the held direction for this frame. The first valid direction
// between two moves locks in; a later different one is queued for the move after.
func (g *Game) Steer(d Direction) {
	if g.over || d == NoDirection {
		return
	}
	if !g.locked {
		if d != g.dir.Opposite() {
			g.dir = d
			g.locked = true
		}
		return
	}
	if d != g.dir && d != g.dir.Opposite() {
		g.queued = d
	}
}

// Advance moves the caterpillar when a full tick has elapsed since the last move.
// It reports whether a move happened.
func (g *Game) Advance(now timing.Timestamp) bool {
	if g.over || now.Sub(g.lastMove) <= g.tick {
		return false
	}
	g.lastMove = now

	g.body = append([]Point{g.head}, g.body...)
	g.head = g.head.Step(g.dir)
	if g.head == g.fruit {
		g.fruit = g.randomCell()
		g.score += g.rules.FruitScore
		g.tick = time.Duration(float64(g.tick) * g.rules.SpeedFactor)
	} else {
		g.body = g.body[:len(g.body)-1]
	}

	if g.queued != NoDirection {
		g.dir = g.queued
		g.queued = NoDirection
	}

	if g.head.X < 0 || g.head.Y < 0 || g.head.X >= g.rules.Squares || g.head.Y >= g.rules.Squares {
		g.over = true
	}
	for _, p := range g.body {
		if p == g.head {
			g.over = true
		}
	}
	g.locked = false
	return true
}

// Update steers then advances, in that order, against one frame timestamp.
func (g *Game) Update(d Direction, now timing.Timestamp) bool {
	g.Steer(d)
	return g.Advance(now)
}

func (g *Game) Head() Point { return g.head }
func (g *Game) Fruit() Point { return g.fruit }
func (g *Game) Score() int { return g.score }
func (g *Game) Tick() time.Duration { return g.tick }
func (g *Game) Over() bool { return g.over }
func (g *Game) Seed() int64 { return g.seed }
func (g *Game) Heading() Direction { return g.dir }
func (g *Game) Queued() Direction { return g.queued }
func (g *Game) Rules() Rules { return g.rules }
func (g *Game) Length() int { return len(g.body) + 1 }

// Body returns the segments behind the head, nearest first.
func (g *Game) Body() []Point {
	out := make([]Point, len(g.body))
	copy(out, g.body)
	return out
}
