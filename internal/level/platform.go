package level

import "github.com/samdwyer/icebound/internal/world"

// Platform segment variants.
const (
	SegmentSolo     world.Variant = 0
	SegmentLeftCap  world.Variant = 1
	SegmentFill     world.Variant = 2
	SegmentRightCap world.Variant = 3
)

// Segment is one tile of a platform.
type Segment struct {
	Offset   int            // Columns right of the anchor
	Variant  world.Variant  // Solo, cap or fill
	Position world.Position // Anchor shifted by Offset
}

// Platform is a horizontal run of ice tiles built from end caps and fill.
type Platform struct {
	Anchor   world.Position
	Width    int
	Segments []Segment
}

// NewPlatform lays out a platform. Width must already be validated.
func NewPlatform(anchor world.Position, width int) Platform {
	return Platform{
		Anchor:   anchor,
		Width:    width,
		Segments: LayoutPlatform(anchor, width),
	}
}

// Covers returns true if one of the platform's segments sits on p.
func (p Platform) Covers(pos world.Position) bool {
	return pos.Y == p.Anchor.Y && pos.X >= p.Anchor.X && pos.X < p.Anchor.X+p.Width
}

// LayoutPlatform returns the ordered segments of a platform anchored at its
// left end. Widths 1 and 2 have no fill; wider platforms fill columns
// 1..width-2. Returns nil for width < 1.
func LayoutPlatform(anchor world.Position, width int) []Segment {
	seg := func(offset int, v world.Variant) Segment {
		return Segment{Offset: offset, Variant: v, Position: anchor.Add(offset, 0)}
	}

	switch {
	case width < 1:
		return nil

	case width == 1:
		return []Segment{seg(0, SegmentSolo)}

	case width == 2:
		return []Segment{
			seg(0, SegmentLeftCap),
			seg(1, SegmentRightCap),
		}

	default:
		segments := make([]Segment, 0, width)
		segments = append(segments, seg(0, SegmentLeftCap))
		for i := 1; i <= width-2; i++ {
			segments = append(segments, seg(i, SegmentFill))
		}
		segments = append(segments, seg(width-1, SegmentRightCap))
		return segments
	}
}
