package calendar

import (
	"github.com/ndanilova/calendar-server/internal/model"
)

// Cell layout constants. Each line occupies a fixed-height slot; events fill
// the top block, meetings the bottom block. The meeting block never starts
// above the full event block extent, so three or fewer events always leave
// the meeting rows at the same vertical position.
const (
	MaxPerCell = 3
	LineHeight = 12
	TopInset   = 5
)

// Style selects the visual channel of a line.
type Style int

const (
	StyleEvent Style = iota
	StyleMeeting
	StyleOverflow
)

// String returns the wire name of the style.
func (s Style) String() string {
	switch s {
	case StyleEvent:
		return "event"
	case StyleMeeting:
		return "meeting"
	case StyleOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the style as its wire name.
func (s Style) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Line is one laid-out text row inside a calendar cell.
type Line struct {
	Text  string `json:"text"`
	Y     int    `json:"y"`
	Style Style  `json:"style"`
}

// Overflow is the marker drawn when a block holds more items than fit.
const Overflow = "..."

// LayoutCell lays out one date cell: up to MaxPerCell event lines followed by
// an overflow marker when events exceed the cap, then the meeting block with
// the same rules. It is a pure function of its inputs.
func LayoutCell(events, meetings []model.Item) []Line {
	lines, extent := layoutBlock(nil, events, StyleEvent, TopInset)

	meetingTop := TopInset + MaxPerCell*LineHeight
	if extent > meetingTop {
		meetingTop = extent
	}

	lines, _ = layoutBlock(lines, meetings, StyleMeeting, meetingTop)
	return lines
}

// layoutBlock appends up to MaxPerCell item lines starting at top, stepping
// LineHeight, plus an overflow marker when items exceed the cap. It returns
// the extended slice and the y coordinate just below the block.
func layoutBlock(lines []Line, items []model.Item, style Style, top int) ([]Line, int) {
	y := top
	for i, item := range items {
		if i >= MaxPerCell {
			break
		}
		lines = append(lines, Line{Text: item.Name, Y: y, Style: style})
		y += LineHeight
	}

	if len(items) > MaxPerCell {
		lines = append(lines, Line{Text: Overflow, Y: y, Style: StyleOverflow})
		y += LineHeight
	}

	return lines, y
}
