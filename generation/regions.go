package generation

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"dungeon-carver/components"
)

// disjointSet tracks which regions have been merged by doors
type disjointSet struct {
	parent []int
}

func newDisjointSet(n int) *disjointSet {
	s := &disjointSet{parent: make([]int, n)}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

func (s *disjointSet) find(x int) int {
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}
	return s.parent[x]
}

// union attaches the group of b under the root of a
func (s *disjointSet) union(a, b int) {
	ra, rb := s.find(a), s.find(b)
	if ra != rb {
		s.parent[rb] = ra
	}
}

func (s *disjointSet) groups(regions []int) int {
	roots := mapset.New[int]()
	for _, r := range regions {
		roots.Put(s.find(r))
	}
	return roots.Size()
}

// ConnectRegions joins the rooms and maze runs into one connected dungeon by
// opening doors in walls that separate different regions. Once two regions are
// joined, remaining connectors between them are only opened with
// extraDoorPercent chance, which adds loops. Returns the number of doors.
//
// This is a separate pass: GrowMaze and PlaceRoom never connect regions.
func (g *DungeonGenerator) ConnectRegions(extraDoorPercent int) int {
	d := g.dungeon
	total := d.CurrentRegion() + 1
	if total < 2 {
		return 0
	}

	// Find all of the walls that can connect two or more regions
	var connectors []components.Point
	connectorRegions := make(map[components.Point][]int)
	for p, tile := range d.All() {
		if tile.Label != components.TileWall {
			continue
		}
		regions := adjacentRegions(d, p)
		if len(regions) < 2 {
			continue
		}
		connectors = append(connectors, p)
		connectorRegions[p] = regions
	}

	roomsByRegion := make(map[int]*components.Room, len(g.rooms))
	for _, room := range g.rooms {
		roomsByRegion[room.Region] = room
	}

	merged := newDisjointSet(total)
	openRegions := mapset.New[int]()
	for i := 0; i < total; i++ {
		openRegions.Put(i)
	}

	doors := 0
	for openRegions.Size() > 1 && len(connectors) > 0 {
		connector := connectors[g.rng.Intn(len(connectors))]
		regions := connectorRegions[connector]

		dest := merged.find(regions[0])
		d.Carve(connector, components.TileDoor, dest)
		linkRooms(roomsByRegion, regions)
		doors++

		for _, r := range regions[1:] {
			root := merged.find(r)
			if root == dest {
				continue
			}
			merged.union(dest, root)
			openRegions.Remove(root)
		}

		// Drop connectors that no longer join separate groups
		kept := connectors[:0]
		for _, c := range connectors {
			// Don't allow doors right next to each other
			if c == connector || g.touchesDoor(c) {
				continue
			}
			if merged.groups(connectorRegions[c]) > 1 {
				kept = append(kept, c)
				continue
			}
			if g.rng.Intn(100) < extraDoorPercent {
				d.Carve(c, components.TileDoor, merged.find(connectorRegions[c][0]))
				linkRooms(roomsByRegion, connectorRegions[c])
				doors++
			}
		}
		// Extra doors may have landed next to connectors kept earlier
		connectors = slices.DeleteFunc(kept, g.touchesDoor)
	}

	g.log.Debug().
		Int("doors", doors).
		Int("unconnected", openRegions.Size()-1).
		Msg("region connector finished")

	return doors
}

// PruneDeadEnds fills corridor and door tiles with at most one open side back
// in with wall. passes <= 0 repeats until nothing changes. Returns the number
// of tiles filled.
func (g *DungeonGenerator) PruneDeadEnds(passes int) int {
	d := g.dungeon
	removed := 0

	for pass := 0; passes <= 0 || pass < passes; pass++ {
		done := true
		for p, tile := range d.All() {
			if tile.Label != components.TileCorridor && tile.Label != components.TileDoor {
				continue
			}
			if countExits(d, p) > 1 {
				continue
			}
			d.Carve(p, components.TileWall, components.NoRegion)
			removed++
			done = false
		}
		if done {
			break
		}
	}

	return removed
}

func (g *DungeonGenerator) touchesDoor(p components.Point) bool {
	for _, n := range g.dungeon.Neighbors(p, components.Cardinal()) {
		if g.dungeon.Tile(n).Label == components.TileDoor {
			return true
		}
	}
	return false
}

// linkRooms records on every room among regions which other regions it now
// shares a door with
func linkRooms(roomsByRegion map[int]*components.Room, regions []int) {
	for _, r := range regions {
		room, ok := roomsByRegion[r]
		if !ok {
			continue
		}
		for _, other := range regions {
			if other != r {
				room.Connections.Put(other)
			}
		}
	}
}
