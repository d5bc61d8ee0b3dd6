package systems

import (
	"bufio"
	"io"

	"dungeon-carver/components"
)

// RenderASCII writes the dungeon to w, one line per row
func RenderASCII(w io.Writer, d *components.Dungeon) error {
	bw := bufio.NewWriter(w)
	for p, tile := range d.All() {
		if _, err := bw.WriteRune(TileGlyph(tile.Label)); err != nil {
			return err
		}
		if p.X == d.Width-1 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
