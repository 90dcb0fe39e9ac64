package waka

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/waka-arcade/internal/core"
)

// ErrInvalidLevel is returned when a fruit type is requested for a level
// number below one.
var ErrInvalidLevel = errors.New("waka: level number must be greater than zero")

// FruitType is one of the ranked fruit kinds, ordered by point value.
type FruitType int

const (
	FruitCherry FruitType = iota
	FruitStrawberry
	FruitPeach
	FruitApple
	FruitGrapes
	FruitGalaxian
	FruitBell
	FruitKey
)

// fruitTypeCount is the number of fruit kinds, for random selection.
const fruitTypeCount = 8

// Points returns the score value of the fruit type.
func (t FruitType) Points() int {
	switch t {
	case FruitCherry:
		return 100
	case FruitStrawberry:
		return 300
	case FruitPeach:
		return 500
	case FruitApple:
		return 700
	case FruitGrapes:
		return 1000
	case FruitGalaxian:
		return 2000
	case FruitBell:
		return 3000
	case FruitKey:
		return 5000
	default:
		return 0
	}
}

// String returns the fruit name.
func (t FruitType) String() string {
	switch t {
	case FruitCherry:
		return "cherry"
	case FruitStrawberry:
		return "strawberry"
	case FruitPeach:
		return "peach"
	case FruitApple:
		return "apple"
	case FruitGrapes:
		return "grapes"
	case FruitGalaxian:
		return "galaxian"
	case FruitBell:
		return "bell"
	case FruitKey:
		return "key"
	default:
		return "unknown"
	}
}

// glyph returns the board glyph and color for the fruit type.
func (t FruitType) glyph() (rune, core.Color) {
	switch t {
	case FruitCherry:
		return '%', core.ColorRed
	case FruitStrawberry:
		return '$', core.ColorBrightRed
	case FruitPeach:
		return '@', core.ColorOrange
	case FruitApple:
		return 'o', core.ColorGreen
	case FruitGrapes:
		return '8', core.ColorMagenta
	case FruitGalaxian:
		return '#', core.ColorCyan
	case FruitBell:
		return 'A', core.ColorYellow
	default:
		return '~', core.ColorWhite
	}
}

// FruitTypeForLevel returns the fruit kind that appears on the given
// level: the two lowest-value kinds on levels 1 and 2, then one kind per
// pair of levels, and the highest-value kind from level 13 on. A level
// below one is a contract violation and returns ErrInvalidLevel.
func FruitTypeForLevel(level int) (FruitType, error) {
	if level <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	switch level {
	case 1:
		return FruitCherry, nil
	case 2:
		return FruitStrawberry, nil
	case 3, 4:
		return FruitPeach, nil
	case 5, 6:
		return FruitApple, nil
	case 7, 8:
		return FruitGrapes, nil
	case 9, 10:
		return FruitGalaxian, nil
	case 11, 12:
		return FruitBell, nil
	default:
		return FruitKey, nil
	}
}

// FruitSettings is the timing and threshold configuration of the fruit.
type FruitSettings struct {
	// VisibleLower and VisibleUpper bound the randomized time a fruit
	// stays on the board.
	VisibleLower time.Duration
	VisibleUpper time.Duration

	// ThresholdFirst and ThresholdSecond are the dots-eaten counts after
	// which the first and second fruit of a level appear.
	ThresholdFirst  int
	ThresholdSecond int

	// TrophyEden keeps the fruit permanently visible, re-randomizing its
	// kind and position each time it would otherwise hide.
	TrophyEden bool

	// TrophyGoogol switches the fruit to the alternate glyph set.
	TrophyGoogol bool
}

// DefaultFruitSettings returns the stock timing configuration:
// visible 5-9 seconds, thresholds at 70 and 170 dots, trophies off.
func DefaultFruitSettings() FruitSettings {
	return FruitSettings{
		VisibleLower:    5 * time.Second,
		VisibleUpper:    9 * time.Second,
		ThresholdFirst:  70,
		ThresholdSecond: 170,
	}
}

// fruitHidden is the off-board sentinel position of an invisible fruit.
var fruitHidden = Point{X: -1, Y: -1}

// Fruit is the timed reward entity. It never moves on its own; it blinks
// between Hidden and Visible driven by dot thresholds and a randomized
// visibility window.
type Fruit struct {
	Entity
	typ        FruitType
	visible    bool
	created    time.Time
	visibleFor time.Duration
	shownCount int
	settings   FruitSettings
	positions  []Point
}

// NewFruit creates a hidden fruit with default settings.
func NewFruit() *Fruit {
	f := &Fruit{
		Entity:   newEntity(),
		settings: DefaultFruitSettings(),
	}
	f.pos = fruitHidden
	return f
}

// Type returns the current fruit kind.
func (f *Fruit) Type() FruitType { return f.typ }

// IsVisible reports whether the fruit is on the board.
func (f *Fruit) IsVisible() bool { return f.visible }

// Settings returns the active timing configuration.
func (f *Fruit) Settings() FruitSettings { return f.settings }

// ApplyConfig replaces the timing configuration. An in-flight visibility
// window is invalidated: the fruit hides (and, under the eden trophy,
// immediately re-shows with fresh randomization).
func (f *Fruit) ApplyConfig(g *Game, s FruitSettings) {
	f.settings = s
	f.hide(g)
}

// Eat consumes the visible fruit: returns its point value and hides it.
func (f *Fruit) Eat(g *Game) int {
	points := f.typ.Points()
	f.hide(g)
	return points
}

// hide takes the fruit off the board. Under the eden trophy the fruit
// instead reappears at once with a re-randomized kind.
func (f *Fruit) hide(g *Game) {
	if f.settings.TrophyEden {
		f.typ = FruitType(g.rng.Intn(fruitTypeCount))
		if len(f.positions) > 0 {
			f.show(g)
		}
		return
	}
	f.visible = false
	f.SetPosition(fruitHidden)
}

// show places the fruit on a random legal spawn cell with a freshly
// randomized visibility window.
func (f *Fruit) show(g *Game) {
	f.visible = true
	f.shownCount++
	spanMs := int((f.settings.VisibleUpper-f.settings.VisibleLower)/time.Millisecond) + 1
	f.visibleFor = f.settings.VisibleLower + time.Duration(g.rng.Intn(spanMs))*time.Millisecond
	f.SetPosition(f.positions[g.rng.Intn(len(f.positions))])
	f.created = g.now()
}

// RecomputeSpawns rebuilds the legal spawn set from the board. Called
// after every resize; under the eden trophy the fruit shows right away.
func (f *Fruit) RecomputeSpawns(g *Game) {
	f.positions = f.positions[:0]
	for y := 0; y < g.board.CellsTall(); y++ {
		for x := 0; x < g.board.CellsWide(); x++ {
			p := Point{X: x, Y: y}
			if g.board.IsValidBoardPosition(p) {
				f.positions = append(f.positions, p)
			}
		}
	}
	if f.settings.TrophyEden && len(f.positions) > 0 {
		f.show(g)
	}
}

// Tick runs the visibility state machine: an expired window hides the
// fruit, a crossed dot threshold shows it. Each threshold fires at most
// once per level, tracked by the shown count.
func (f *Fruit) Tick(g *Game) {
	f.tickCount++

	if f.visible {
		if g.now().Sub(f.created) > f.visibleFor {
			f.hide(g)
		}
		return
	}

	dotsEaten := g.board.DotsEaten()
	if (dotsEaten > f.settings.ThresholdFirst && f.shownCount == 0) ||
		(dotsEaten > f.settings.ThresholdSecond && f.shownCount == 1) {
		f.show(g)
	}
}

// NewLevel hides the fruit, resets the shown count and selects the kind
// for the level.
func (f *Fruit) NewLevel(g *Game) {
	f.hide(g)
	f.shownCount = 0

	typ, err := FruitTypeForLevel(g.level)
	if err != nil {
		// The host starts counting levels at one; anything else is a bug.
		panic(err)
	}
	f.typ = typ
}

// Draw renders the fruit when visible. The googol trophy swaps the fruit
// glyphs for a uniform alternate look.
func (f *Fruit) Draw(dst *core.Screen, g *Game) {
	if !f.visible {
		return
	}
	x, y := g.screenPos(f.loc)
	if f.settings.TrophyGoogol {
		dst.SetColored(x, y, 'G', core.ColorBrightBlue)
		return
	}
	r, c := f.typ.glyph()
	dst.SetColored(x, y, r, c)
}
