package generation

import (
	"math/bits"
	"slices"

	"dungeon-carver/components"
)

// Side bits used by openMask
const (
	ConnectTop    = 1
	ConnectRight  = 2
	ConnectBottom = 4
	ConnectLeft   = 8
)

// IsOpen reports whether a tile type has been carved out of the rock
func IsOpen(label components.TileType) bool {
	return label == components.TileFloor ||
		label == components.TileCorridor ||
		label == components.TileDoor
}

// openMask calculates a bitmask of the cardinal sides of p that are open.
// Out-of-bounds neighbours count as rock.
func openMask(d *components.Dungeon, p components.Point) int {
	mask := 0

	if IsOpen(d.Tile(p.Add(components.North)).Label) { // Top
		mask |= ConnectTop
	}
	if IsOpen(d.Tile(p.Add(components.East)).Label) { // Right
		mask |= ConnectRight
	}
	if IsOpen(d.Tile(p.Add(components.South)).Label) { // Bottom
		mask |= ConnectBottom
	}
	if IsOpen(d.Tile(p.Add(components.West)).Label) { // Left
		mask |= ConnectLeft
	}

	return mask
}

// countExits returns how many cardinal neighbours of p are open
func countExits(d *components.Dungeon, p components.Point) int {
	return bits.OnesCount(uint(openMask(d, p)))
}

// adjacentRegions returns the distinct regions touching p on its cardinal
// sides, in N, E, S, W order of first appearance
func adjacentRegions(d *components.Dungeon, p components.Point) []int {
	var regions []int
	for _, n := range d.Neighbors(p, components.Cardinal()) {
		region := d.Region(n)
		if region == components.NoRegion {
			continue
		}
		if !slices.Contains(regions, region) {
			regions = append(regions, region)
		}
	}
	return regions
}
