// Package caves holds the compiled-in cave pack.
package caves

import "github.com/vovakirdan/tui-boulder/internal/games/boulderdash/cave"

// PackID is the ID the pack registers under.
const PackID = "dash"

func init() {
	Register(Dash())
}

// Dash builds the pack from the cave blobs. Intermissions follow every
// fourth cave.
func Dash() *Pack {
	return &Pack{
		ID:    PackID,
		Title: "Dash Caves",
		Caves: []Cave{
			{Letter: "A", Name: "Intro", Def: cave.MustParse(intro)},
			{Letter: "B", Name: "Rooms", Def: cave.MustParse(rooms)},
			{Letter: "C", Name: "Butterflies", Def: cave.MustParse(butterflies)},
			{Letter: "D", Name: "Amoeba", Def: cave.MustParse(amoeba)},
			{Letter: "I", Name: "Bonus Pit", Intermission: true, Def: cave.MustParse(bonusPit)},
			{Letter: "E", Name: "Magic Wall", Def: cave.MustParse(magicWall)},
		},
	}
}

// Each blob is laid out as: id, magic wall time, diamond value, extra
// value; five seeds; five quotas; five times; colours; random fill codes
// and thresholds; then one instruction per line.

var intro = []byte{
	0x01, 0x14, 0x0A, 0x0F,
	0x0A, 0x0B, 0x0C, 0x0D, 0x0E,
	0x0C, 0x0C, 0x0C, 0x0C, 0x0C,
	0x96, 0x6E, 0x46, 0x28, 0x1E,
	0x08, 0x0B, 0x09, 0xD4, 0x20,
	0x00, 0x10, 0x14, 0x00, 0x3C, 0x32, 0x09, 0x00,
	0x42, 0x01, 0x09, 0x1E, 0x02,
	0x42, 0x09, 0x10, 0x1E, 0x02,
	0x25, 0x03, 0x04,
	0x04, 0x26, 0x12,
	0xFF,
}

var rooms = []byte{
	0x02, 0x14, 0x0A, 0x14,
	0x03, 0x00, 0x01, 0x57, 0x58,
	0x0F, 0x12, 0x14, 0x16, 0x18,
	0x96, 0x8C, 0x82, 0x78, 0x6E,
	0x08, 0x0B, 0x09, 0xD4, 0x20,
	0x10, 0x14, 0x00, 0x00, 0x30, 0x08, 0x00, 0x00,
	0xC2, 0x04, 0x05, 0x09, 0x06,
	0x08, 0x08, 0x07,
	0x01, 0x08, 0x05,
	0x14, 0x06, 0x07,
	0x14, 0x0A, 0x08,
	0xC2, 0x10, 0x0C, 0x09, 0x06,
	0x0A, 0x14, 0x0E,
	0x00, 0x10, 0x0E,
	0x14, 0x16, 0x0F,
	0x14, 0x12, 0x10,
	0xC2, 0x1C, 0x06, 0x09, 0x07,
	0x09, 0x20, 0x09,
	0x00, 0x20, 0x0C,
	0x14, 0x1E, 0x08,
	0x14, 0x22, 0x0A,
	0x25, 0x02, 0x04,
	0x04, 0x26, 0x15,
	0xFF,
}

var butterflies = []byte{
	0x03, 0x1E, 0x0F, 0x19,
	0x0A, 0x0B, 0x0C, 0x0D, 0x0E,
	0x0A, 0x0C, 0x0E, 0x10, 0x12,
	0x96, 0x8C, 0x82, 0x78, 0x6E,
	0x08, 0x0B, 0x09, 0xD4, 0x20,
	0x10, 0x14, 0x00, 0x00, 0x28, 0x04, 0x00, 0x00,
	0x42, 0x01, 0x0C, 0x1E, 0x02,
	0x90, 0x06, 0x06, 0x05, 0x04, 0x00,
	0x30, 0x08, 0x07,
	0x90, 0x10, 0x06, 0x05, 0x04, 0x00,
	0x30, 0x12, 0x07,
	0x90, 0x1A, 0x06, 0x05, 0x04, 0x00,
	0x30, 0x1C, 0x07,
	0x90, 0x06, 0x0F, 0x05, 0x04, 0x00,
	0x30, 0x08, 0x10,
	0x90, 0x10, 0x0F, 0x05, 0x04, 0x00,
	0x30, 0x12, 0x10,
	0x90, 0x1A, 0x0F, 0x05, 0x04, 0x00,
	0x30, 0x1C, 0x10,
	0x25, 0x23, 0x04,
	0x04, 0x23, 0x15,
	0xFF,
}

var amoeba = []byte{
	0x04, 0x14, 0x0A, 0x14,
	0x14, 0x15, 0x16, 0x17, 0x18,
	0x32, 0x32, 0x32, 0x32, 0x32,
	0xB4, 0xAA, 0xA0, 0x96, 0x8C,
	0x08, 0x0B, 0x09, 0xD4, 0x20,
	0x10, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00,
	0x82, 0x0E, 0x09, 0x0D, 0x08, 0x01,
	0x40, 0x0E, 0x0C, 0x01, 0x02,
	0x3A, 0x14, 0x0C,
	0x25, 0x03, 0x05,
	0x04, 0x24, 0x14,
	0xFF,
}

var bonusPit = []byte{
	0x11, 0x03, 0x1E, 0x00,
	0x0A, 0x0A, 0x0A, 0x0A, 0x0A,
	0x0A, 0x0A, 0x0A, 0x0A, 0x0A,
	0x14, 0x14, 0x14, 0x14, 0x14,
	0x08, 0x0B, 0x09, 0xD4, 0x20,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x87, 0x13, 0x02, 0x15, 0x16, 0x07,
	0x87, 0x00, 0x0D, 0x13, 0x0B, 0x07,
	0x50, 0x03, 0x04, 0x0E, 0x02,
	0x54, 0x03, 0x05, 0x0E, 0x02,
	0x40, 0x03, 0x06, 0x0E, 0x02,
	0x25, 0x02, 0x0B,
	0x04, 0x11, 0x0B,
	0xFF,
}

var magicWall = []byte{
	0x05, 0x1E, 0x05, 0x0A,
	0x20, 0x21, 0x22, 0x23, 0x24,
	0x14, 0x16, 0x18, 0x1A, 0x1C,
	0x96, 0x8C, 0x82, 0x78, 0x6E,
	0x08, 0x0B, 0x09, 0xD4, 0x20,
	0x10, 0x14, 0x00, 0x00, 0x50, 0x06, 0x00, 0x00,
	0x43, 0x01, 0x0E, 0x1E, 0x02,
	0x40, 0x01, 0x0F, 0x1E, 0x02,
	0x25, 0x03, 0x04,
	0x04, 0x25, 0x15,
	0xFF,
}
