package arkanoid

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/shape"
)

// Level supplies the initial bricks and the play-field size.
type Level interface {
	Bricks() []Brick
	Width() float64
	Height() float64
}

// State owns every entity of a running round and advances them one frame at
// a time. It is not safe for concurrent use; the frame loop serializes
// Update and Render.
type State struct {
	cfg    Config
	width  float64
	height float64

	bricks  []Brick
	walls   []Wall
	paddle  Paddle
	balls   []Ball
	falling []FallingBonus
	active  []ActiveBonus

	// Active bonus counts per type, rebuilt every frame.
	counts *intmap.Map[BonusType, int]

	lives int
	score int
	tick  uint64
}

// NewState builds the entities of a fresh round from level.
func NewState(level Level, cfg Config) *State {
	w, h := level.Width(), level.Height()
	s := &State{
		cfg:    cfg,
		width:  w,
		height: h,
		bricks: slices.Clone(level.Bricks()),
		walls:  MakeWalls(w, h),
		paddle: NewPaddle(geom.Pt(w*0.5, h-cfg.PaddleOffset), cfg),
		counts: intmap.New[BonusType, int](int(bonusTypeCount)),
		lives:  cfg.Lives,
	}
	s.balls = []Ball{s.serveBall()}
	return s
}

// Input sets the paddle steering intent for the next Update.
func (s *State) Input(steering float64) {
	s.paddle.SetInput(steering)
}

// Launch releases every ball still glued to the paddle.
func (s *State) Launch() {
	for i := range s.balls {
		s.balls[i].Hold = 0
	}
}

// SetBaseSpeed changes the unslowed ball speed for balls in play and for
// later serves. The new norm takes effect on the next Update.
func (s *State) SetBaseSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	s.cfg.BaseSpeed = speed
	for i := range s.balls {
		s.balls[i].BaseSpeed = speed
	}
}

// BaseSpeed returns the current unslowed ball speed.
func (s *State) BaseSpeed() float64 { return s.cfg.BaseSpeed }

// Alive reports whether lives remain.
func (s *State) Alive() bool {
	return s.lives > 0
}

// Won reports whether every breakable brick is gone.
func (s *State) Won() bool {
	for i := range s.bricks {
		if s.bricks[i].Breakable {
			return false
		}
	}
	return true
}

// Over reports whether the round has reached a terminal state.
func (s *State) Over() bool {
	return !s.Alive() || s.Won()
}

// Lives returns the remaining lives.
func (s *State) Lives() int { return s.lives }

// Score returns the points earned so far.
func (s *State) Score() int { return s.score }

// Tick returns the number of frames simulated.
func (s *State) Tick() uint64 { return s.tick }

// Width returns the play-field width.
func (s *State) Width() float64 { return s.width }

// Height returns the play-field height.
func (s *State) Height() float64 { return s.height }

// ActiveCount returns how many bonuses of type t were active last frame.
func (s *State) ActiveCount(t BonusType) int {
	n, _ := s.counts.Get(t)
	return n
}

// Update advances the round by dt seconds. Terminal states are frozen.
func (s *State) Update(dt float64, rng Rand) {
	if s.Over() {
		return
	}
	s.tick++

	// Bodies.
	anchor := s.anchor()
	for i := range s.balls {
		s.balls[i].Update(dt, anchor)
	}
	s.paddle.Update(dt)

	// Bricks.
	for bi := range s.bricks {
		brick := &s.bricks[bi]
		for i := range s.balls {
			if !brick.Alive() {
				break
			}
			col, ok := shape.RectCircle(brick.Shape(), s.balls[i].Shape())
			if !ok {
				continue
			}
			s.balls[i].Bounce(col)
			brick.Damage()
			if !brick.Alive() {
				s.score += brick.Points()
				s.maybeSpawnBonus(brick.Center, rng)
			}
		}
	}
	s.bricks = slices.DeleteFunc(s.bricks, func(b Brick) bool { return !b.Alive() })

	// Paddle.
	paddle := s.paddle.Shape()
	for i := range s.balls {
		if col, ok := shape.RectCircle(paddle, s.balls[i].Shape()); ok {
			s.balls[i].Bounce(col)
		}
	}

	s.updateFalling(dt)
	s.updateActive(dt)

	// Pit.
	pit := s.pit().Shape
	s.balls = slices.DeleteFunc(s.balls, func(b Ball) bool {
		_, ok := shape.WallCircle(pit, b.Shape())
		return ok
	})
	if len(s.balls) == 0 {
		s.lives--
		if s.lives > 0 {
			s.balls = append(s.balls, s.serveBall())
		}
	}

	// Walls.
	for _, wall := range s.walls {
		if !wall.Bounce() {
			continue
		}
		for i := range s.balls {
			if col, ok := shape.WallCircle(wall.Shape, s.balls[i].Shape()); ok {
				s.balls[i].Bounce(col)
			}
		}
		if col, ok := shape.WallRect(wall.Shape, s.paddle.Shape()); ok {
			s.paddle.Bounce(col)
		}
	}
}

// updateFalling moves falling bonuses, drops those reaching the pit and
// activates those caught by the paddle. The pit is checked first.
func (s *State) updateFalling(dt float64) {
	pit := s.pit().Shape
	paddle := s.paddle.Shape()

	var caught []BonusType
	for i := range s.falling {
		s.falling[i].Update(dt)
	}
	s.falling = slices.DeleteFunc(s.falling, func(f FallingBonus) bool {
		if _, ok := shape.WallCircle(pit, f.Shape()); ok {
			return true
		}
		if _, ok := shape.RectCircle(paddle, f.Shape()); ok {
			caught = append(caught, f.Type)
			return true
		}
		return false
	})

	for _, t := range caught {
		s.activate(t)
	}
}

// updateActive burns down timed bonuses, recounts them per type, purges the
// expired ones and reapplies every stack effect from the fresh counts.
func (s *State) updateActive(dt float64) {
	s.counts.Clear()
	for i := range s.active {
		s.active[i].Update(dt)
		if s.active[i].Active() {
			n, _ := s.counts.Get(s.active[i].Type)
			s.counts.Put(s.active[i].Type, n+1)
		}
	}
	s.active = slices.DeleteFunc(s.active, func(a ActiveBonus) bool { return !a.Active() })

	for t := range bonusTypeCount {
		n, _ := s.counts.Get(t)
		s.stack(t, n)
	}
}

// stack applies the continuous effect of count active bonuses of type t.
func (s *State) stack(t BonusType, count int) {
	if t != BonusSlow {
		return
	}
	for i := range s.balls {
		s.balls[i].Speed(count)
	}
}

// activate applies a caught bonus.
func (s *State) activate(t BonusType) {
	switch t {
	case BonusExpand:
		s.paddle.Grow()
	case BonusDivide:
		s.divide()
	case BonusLife:
		s.lives++
	case BonusSlow:
		s.active = append(s.active, ActiveBonus{Type: t, Timer: s.cfg.BonusDuration})
	}
}

// divide fans two clones out of every existing ball, stopping at MaxBalls.
func (s *State) divide() {
	existing := len(s.balls)
	for i := 0; i < existing; i++ {
		for _, offset := range [2]float64{s.cfg.DivideAngle, -s.cfg.DivideAngle} {
			if len(s.balls) >= s.cfg.MaxBalls {
				return
			}
			clone := s.balls[i]
			clone.Rotate(offset)
			s.balls = append(s.balls, clone)
		}
	}
}

func (s *State) maybeSpawnBonus(at geom.Point, rng Rand) {
	if rng.Float64() >= s.cfg.SpawnChance {
		return
	}
	s.falling = append(s.falling, FallingBonus{
		Type:     RandomBonusType(rng),
		Position: at,
		Speed:    s.cfg.FallSpeed,
		Radius:   s.cfg.BonusRadius,
	})
}

func (s *State) serveBall() Ball {
	b := NewBall(s.cfg.ServePosition, s.cfg.ServeAngle, s.cfg.BallRadius, s.cfg.BaseSpeed)
	b.Hold = s.cfg.ServeHold
	if b.Held() {
		b.Position = s.anchor()
	}
	return b
}

// anchor is where a held ball sits: centered just above the paddle.
func (s *State) anchor() geom.Point {
	return geom.Pt(s.paddle.Position.X, s.paddle.Top()-s.cfg.BallRadius-1)
}

func (s *State) pit() Wall {
	for _, w := range s.walls {
		if w.Pit() {
			return w
		}
	}
	return s.walls[len(s.walls)-1]
}
