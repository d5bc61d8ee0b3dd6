package generation

import (
	"fmt"

	"dungeon-carver/components"
)

// PlaceRoom stamps a room into the map when it fits with the given margin, or
// unconditionally when ignoreOverlap is set. A room that does not fit is
// skipped silently; the return value reports whether it was placed.
func (g *DungeonGenerator) PlaceRoom(x, y, width, height, margin int, ignoreOverlap bool) bool {
	room := components.NewRoom(x, y, width, height)
	if !ignoreOverlap && !g.RoomFits(room, margin) {
		return false
	}

	room.Region = g.dungeon.NewRegion()
	for p := range room.Points() {
		// Forced rooms may hang over the edge of the map
		if !g.dungeon.InBounds(p) {
			continue
		}
		g.dungeon.Carve(p, components.TileFloor, room.Region)
	}
	g.rooms = append(g.rooms, room)
	return true
}

// RoomFits reports whether room, grown by margin on every side, lies inside
// the map and covers nothing but wall. The grown rectangle may touch the last
// row and column.
func (g *DungeonGenerator) RoomFits(room *components.Room, margin int) bool {
	if room.Width < 1 || room.Height < 1 {
		return false
	}

	expanded := room.Expand(margin)
	if expanded.X < 0 || expanded.Y < 0 ||
		expanded.Right() >= g.dungeon.Width || expanded.Bottom() >= g.dungeon.Height {
		return false
	}

	for p := range expanded.Points() {
		if g.dungeon.Tile(p).Label != components.TileWall {
			return false
		}
	}
	return true
}

// PlaceRandomRooms tries up to attempts random rooms with sides drawn from
// [minSize, maxSize) in multiples of step. It stops early once maxRoomCount
// rooms have been placed by this call; maxRoomCount <= 0 means no limit.
// It returns the number of rooms placed and ErrRoomTargetNotReached when a
// positive target was missed.
func (g *DungeonGenerator) PlaceRandomRooms(minSize, maxSize, step, margin, attempts, maxRoomCount int) (int, error) {
	if minSize < 1 || step < 1 || maxSize < minSize {
		return 0, fmt.Errorf("%w: min %d, max %d, step %d", ErrInvalidRoomSize, minSize, maxSize, step)
	}

	placed := 0
	for i := 0; i < attempts; i++ {
		if maxRoomCount > 0 && placed >= maxRoomCount {
			break
		}

		roomWidth := g.randomSize(minSize, maxSize, step)
		roomHeight := g.randomSize(minSize, maxSize, step)

		// Anchors may land past the last index; RoomFits rejects those
		x := g.rng.Intn(g.dungeon.Width + 1)
		y := g.rng.Intn(g.dungeon.Height + 1)

		if g.PlaceRoom(x, y, roomWidth, roomHeight, margin, false) {
			placed++
		}
	}

	g.log.Debug().Int("placed", placed).Int("attempts", attempts).Msg("random rooms placed")

	if maxRoomCount > 0 && placed < maxRoomCount {
		return placed, fmt.Errorf("%w: placed %d of %d rooms in %d attempts",
			ErrRoomTargetNotReached, placed, maxRoomCount, attempts)
	}
	return placed, nil
}

// randomSize picks uniformly from lo, lo+step, ... below hi. An empty range
// yields lo.
func (g *DungeonGenerator) randomSize(lo, hi, step int) int {
	choices := (hi - lo + step - 1) / step
	if choices <= 0 {
		return lo
	}
	return lo + step*g.rng.Intn(choices)
}
