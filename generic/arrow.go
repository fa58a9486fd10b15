// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import (
	"fmt"
	"strings"
)

// Direction is where an arrow points.
type Direction int32

const (
	// None draws nothing.
	None Direction = iota

	// Ceiling points up to a bar.
	Ceiling

	// Up points up.
	Up

	// Down points down.
	Down

	// Floor points down to a bar.
	Floor

	// Begin points left to a bar.
	Begin

	// Left points left.
	Left

	// Right points right.
	Right

	// End points right to a bar.
	End

	// Stop is a square.
	Stop

	// DirectionsN is the number of directions.
	DirectionsN
)

var directionNames = [...]string{"None", "Ceiling", "Up", "Down", "Floor", "Begin", "Left", "Right", "End", "Stop"}

// String returns the name of the direction.
func (d Direction) String() string {
	if d.IsValid() {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int32(d))
}

// IsValid returns whether the value is a valid direction.
func (d Direction) IsValid() bool {
	return d >= None && d < DirectionsN
}

// SetString sets the direction from its name or any of its
// synonyms, case insensitively. Unlike [ParseDirection], it
// returns an error for unknown tokens.
func (d *Direction) SetString(s string) error {
	ls := strings.ToLower(strings.TrimSpace(s))
	for i, nm := range directionNames {
		if strings.ToLower(nm) == ls {
			*d = Direction(i)
			return nil
		}
	}
	if v, ok := directionSynonyms[ls]; ok {
		*d = v
		return nil
	}
	return fmt.Errorf("generic.Direction.SetString: %q is not a valid direction", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Direction) UnmarshalText(text []byte) error {
	return d.SetString(string(text))
}

// directionSynonyms are the lower case tokens naming each direction.
var directionSynonyms = map[string]Direction{
	"c": Ceiling, "ceiling": Ceiling, "top": Ceiling, "home": Ceiling,
	"u": Up, "up": Up, "n": Up, "north": Up,
	"d": Down, "down": Down, "s": Down, "south": Down,
	"f": Floor, "floor": Floor, "bottom": Floor,
	"b": Begin, "begin": Begin, "first": Begin,
	"l": Left, "left": Left, "w": Left, "west": Left,
	"r": Right, "right": Right,
	"e": End, "end": End, "last": End,
	"x": Stop, "stop": Stop,
}

// ParseDirection returns the direction named by the token, case
// insensitively, or [None] for unknown tokens.
func ParseDirection(token string) Direction {
	var d Direction
	if d.SetString(token) != nil {
		return None
	}
	return d
}

// arrowShape is the geometry of an arrow archetype pointing up,
// in the 32 unit design space.
type arrowShape struct {

	// head is the arrow head.
	head []point

	// stemX is the horizontal extent of the stem; the stem is
	// omitted when both are zero.
	stemX [2]float64

	// stemY is where the stem starts and ends before the line
	// length delta is applied.
	stemY [2]float64

	// barHead is the arrow head used below a bar.
	barHead []point

	// barStemY is stemY used below a bar.
	barStemY [2]float64

	// bar is the bar of the Ceiling family.
	bar []point

	// stop is the square drawn for Stop.
	stop []point
}

func (a *arrowShape) hasStem() bool {
	return a.stemX != [2]float64{}
}

var (
	arrowNormal = arrowShape{
		head:     []point{{16, 4}, {28, 16}, {4, 16}},
		stemX:    [2]float64{12, 20},
		stemY:    [2]float64{16, 28},
		barHead:  []point{{16, 8}, {28, 20}, {4, 20}},
		barStemY: [2]float64{20, 30},
		bar:      []point{{4, 2}, {28, 2}, {28, 6}, {4, 6}},
		stop:     []point{{8, 8}, {24, 8}, {24, 24}, {8, 24}},
	}
	arrowThin = arrowShape{
		head:     []point{{16, 4}, {28, 16}, {4, 16}},
		stemX:    [2]float64{14, 18},
		stemY:    [2]float64{16, 28},
		barHead:  []point{{16, 8}, {28, 20}, {4, 20}},
		barStemY: [2]float64{20, 30},
		bar:      []point{{4, 2}, {28, 2}, {28, 4}, {4, 4}},
		stop:     []point{{8, 8}, {24, 8}, {24, 24}, {8, 24}},
	}
	arrowSmall = arrowShape{
		head:    []point{{16, 8}, {26, 18}, {6, 18}},
		barHead: []point{{16, 10}, {26, 20}, {6, 20}},
		bar:     []point{{6, 4}, {26, 4}, {26, 8}, {6, 8}},
		stop:    []point{{10, 10}, {22, 10}, {22, 22}, {10, 22}},
	}
)

// arrowTransform is how the upward geometry is placed for a direction.
type arrowTransform struct {
	withBar bool

	// mirror reflects along the arrow axis.
	mirror bool

	// swap exchanges x and y for horizontal arrows.
	swap bool
}

var arrowTransforms = map[Direction]arrowTransform{
	Ceiling: {withBar: true},
	Up:      {},
	Down:    {mirror: true},
	Floor:   {withBar: true, mirror: true},
	Begin:   {withBar: true, swap: true},
	Left:    {swap: true},
	Right:   {mirror: true, swap: true},
	End:     {withBar: true, mirror: true, swap: true},
}

// place maps design points to pixels for the transform.
func (t arrowTransform) place(px int, pts []point) []point {
	res := make([]point, len(pts))
	scale := float64(px) / 32
	for i, p := range pts {
		if t.mirror {
			p.Y = 32 - p.Y
		}
		if t.swap {
			p.X, p.Y = p.Y, p.X
		}
		res[i] = pt(p.X*scale, p.Y*scale)
	}
	return res
}

// arrow returns the archetype drawing arrows of the given shape.
//
//	@arrow|direction|style|lineLengthDelta
//
// The style defaults to the Blue class. The line length delta, in
// design units, lengthens (or shortens, if negative) the stem.
func arrow(shape *arrowShape) func(b *body, s Spec) error {
	return func(b *body, s Spec) error {
		dir := ParseDirection(s.Param(1, "u"))
		style := styleAttr(s.Param(2, ""), "Blue")
		delta := float64(s.IntParam(3, 0))

		if dir == Stop {
			b.polygon(style, arrowTransform{}.place(b.px, shape.stop)...)
			return nil
		}
		t, ok := arrowTransforms[dir]
		if !ok {
			return nil
		}
		head, stemY := shape.head, shape.stemY
		if t.withBar {
			head, stemY = shape.barHead, shape.barStemY
			b.polygon(style, t.place(b.px, shape.bar)...)
		}
		if shape.hasStem() {
			end := min(max(stemY[1]+delta, stemY[0]+2), 32)
			x0, x1 := shape.stemX[0], shape.stemX[1]
			stem := []point{{x0, stemY[0]}, {x1, stemY[0]}, {x1, end}, {x0, end}}
			b.polygon(style, t.place(b.px, stem)...)
		}
		b.polygon(style, t.place(b.px, head)...)
		return nil
	}
}
