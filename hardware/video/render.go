// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package video

import (
	"slices"

	"github.com/gopherboy/gopherboy/hardware/memory/memorymap"
	"github.com/gopherboy/gopherboy/hardware/sink"
)

// RGB values for the four shades of the display, lightest first
var shades = [4][sink.BytesPerPixel]uint8{
	{0xe0, 0xf8, 0xd0},
	{0x88, 0xc0, 0x70},
	{0x34, 0x68, 0x56},
	{0x08, 0x18, 0x20},
}

// the maximum number of sprites drawn on a single line
const maxSpritesPerLine = 10

// sprite attribute bits
const (
	attrPalette  = 0x10
	attrFlipX    = 0x20
	attrFlipY    = 0x40
	attrPriority = 0x80
)

type sprite struct {
	y    int
	x    int
	tile uint8
	attr uint8
}

// colour index of a pixel in a tile. the row is 0 to 7 (or 15 for tall
// sprites), the column is 0 to 7
func (vd *Video) tilePixel(addr uint16, row int, col int) uint8 {
	a := int(addr-memorymap.OriginVRAM) + row*2
	lo := vd.vram[a]
	hi := vd.vram[a+1]
	bit := 7 - col
	return (hi>>bit)&0x01<<1 | (lo>>bit)&0x01
}

// address of the tile data for a background or window tile number
func (vd *Video) bgTileAddr(tile uint8) uint16 {
	if vd.lcdc&lcdcTileData == lcdcTileData {
		return 0x8000 + uint16(tile)*16
	}
	return uint16(0x9000 + int(int8(tile))*16)
}

func (vd *Video) mapTile(base uint16, x int, y int) uint8 {
	return vd.vram[int(base-memorymap.OriginVRAM)+(y/8)*32+x/8]
}

func palette(p uint8, idx uint8) [sink.BytesPerPixel]uint8 {
	return shades[(p>>(idx*2))&0x03]
}

func (vd *Video) plot(x int, rgb [sink.BytesPerPixel]uint8) {
	i := (int(vd.ly)*sink.FrameWidth + x) * sink.BytesPerPixel
	copy(vd.frame[i:i+sink.BytesPerPixel], rgb[:])
}

// renderLine draws the current line into the frame
func (vd *Video) renderLine() {
	vd.renderBackground()
	vd.renderWindow()
	vd.renderSprites()
}

func (vd *Video) renderBackground() {
	if vd.lcdc&lcdcBGEnable == 0 {
		for x := range sink.FrameWidth {
			vd.bgIndex[x] = 0
			vd.plot(x, palette(vd.bgp, 0))
		}
		return
	}

	base := uint16(0x9800)
	if vd.lcdc&lcdcBGMap == lcdcBGMap {
		base = 0x9c00
	}

	y := (int(vd.ly) + int(vd.scy)) & 0xff
	for x := range sink.FrameWidth {
		px := (x + int(vd.scx)) & 0xff
		tile := vd.mapTile(base, px, y)
		idx := vd.tilePixel(vd.bgTileAddr(tile), y%8, px%8)
		vd.bgIndex[x] = idx
		vd.plot(x, palette(vd.bgp, idx))
	}
}

func (vd *Video) renderWindow() {
	if vd.lcdc&lcdcBGEnable == 0 || vd.lcdc&lcdcWindowEnable == 0 {
		return
	}
	if vd.ly < vd.wy || vd.wx > 166 {
		return
	}

	base := uint16(0x9800)
	if vd.lcdc&lcdcWindowMap == lcdcWindowMap {
		base = 0x9c00
	}

	left := int(vd.wx) - 7
	y := vd.windowLine
	for x := max(left, 0); x < sink.FrameWidth; x++ {
		wx := x - left
		tile := vd.mapTile(base, wx, y)
		idx := vd.tilePixel(vd.bgTileAddr(tile), y%8, wx%8)
		vd.bgIndex[x] = idx
		vd.plot(x, palette(vd.bgp, idx))
	}
	vd.windowLine++
}

// the sprites that are visible on the current line in priority order
func (vd *Video) lineSprites() []sprite {
	height := 8
	if vd.lcdc&lcdcOBJSize == lcdcOBJSize {
		height = 16
	}

	spr := make([]sprite, 0, maxSpritesPerLine)
	for i := 0; i < len(vd.oam) && len(spr) < maxSpritesPerLine; i += 4 {
		s := sprite{
			y:    int(vd.oam[i]) - 16,
			x:    int(vd.oam[i+1]) - 8,
			tile: vd.oam[i+2],
			attr: vd.oam[i+3],
		}
		if int(vd.ly) >= s.y && int(vd.ly) < s.y+height {
			spr = append(spr, s)
		}
	}

	// lower x coordinates have priority. OAM order decides between sprites
	// with the same x coordinate
	slices.SortStableFunc(spr, func(a, b sprite) int {
		return a.x - b.x
	})

	return spr
}

func (vd *Video) renderSprites() {
	if vd.lcdc&lcdcOBJEnable == 0 {
		return
	}

	height := 8
	if vd.lcdc&lcdcOBJSize == lcdcOBJSize {
		height = 16
	}

	spr := vd.lineSprites()

	for x := range sink.FrameWidth {
		for _, s := range spr {
			if x < s.x || x >= s.x+8 {
				continue
			}

			row := int(vd.ly) - s.y
			if s.attr&attrFlipY == attrFlipY {
				row = height - 1 - row
			}
			col := x - s.x
			if s.attr&attrFlipX == attrFlipX {
				col = 7 - col
			}

			tile := s.tile
			if height == 16 {
				tile &= 0xfe
			}

			idx := vd.tilePixel(0x8000+uint16(tile)*16, row, col)
			if idx == 0 {
				continue
			}

			if s.attr&attrPriority == 0 || vd.bgIndex[x] == 0 {
				p := vd.obp0
				if s.attr&attrPalette == attrPalette {
					p = vd.obp1
				}
				vd.plot(x, palette(p, idx))
			}
			break
		}
	}
}
