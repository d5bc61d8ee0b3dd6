package generation

import (
	"testing"

	"dungeon-carver/components"
)

// alignedDungeon builds a 31x31 map whose rooms sit on the odd lattice, so
// every room and maze run is separated from its neighbours by a single wall
func alignedDungeon(t *testing.T, seed int64) *DungeonGenerator {
	t.Helper()

	g := newTestGenerator(31, 31, seed)
	for _, r := range [][4]int{{3, 3, 5, 5}, {19, 3, 7, 5}, {3, 19, 5, 7}, {17, 17, 9, 9}} {
		if !g.PlaceRoom(r[0], r[1], r[2], r[3], 1, false) {
			t.Fatalf("room %v should fit", r)
		}
	}
	g.BuildCorridors()
	return g
}

// reachable flood-fills open tiles from start
func reachable(d *components.Dungeon, start components.Point) map[components.Point]bool {
	seen := map[components.Point]bool{start: true}
	queue := []components.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range d.Neighbors(p, components.Cardinal()) {
			if seen[n] || !IsOpen(d.Tile(n).Label) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func openTiles(d *components.Dungeon) int {
	n := 0
	for _, tile := range d.All() {
		if IsOpen(tile.Label) {
			n++
		}
	}
	return n
}

func TestDisjointSet(t *testing.T) {
	s := newDisjointSet(5)
	s.union(0, 1)
	s.union(3, 4)
	s.union(1, 4)

	if s.find(0) != s.find(3) {
		t.Error("0 and 3 should share a root")
	}
	if s.find(2) == s.find(0) {
		t.Error("2 should stay on its own")
	}
	if got := s.groups([]int{0, 1, 2, 3, 4}); got != 2 {
		t.Errorf("expected 2 groups, got %d", got)
	}
}

func TestConnectRegionsJoinsEverything(t *testing.T) {
	g := alignedDungeon(t, 21)
	floorsBefore := countLabel(g, components.TileFloor)

	doors := g.ConnectRegions(0)
	if doors == 0 {
		t.Fatal("expected at least one door")
	}
	if n := countLabel(g, components.TileDoor); n != doors {
		t.Errorf("expected %d door tiles, got %d", doors, n)
	}
	if countLabel(g, components.TileFloor) != floorsBefore {
		t.Error("connector must not touch room floors")
	}

	d := g.Dungeon()
	start := g.Rooms()[0].TopLeft()
	if got, want := len(reachable(d, start)), openTiles(d); got != want {
		t.Errorf("expected all %d open tiles reachable, got %d", want, got)
	}

	for i, room := range g.Rooms() {
		if room.Connections.Size() == 0 {
			t.Errorf("room %d has no recorded connections", i)
		}
	}
}

func TestConnectRegionsExtraDoors(t *testing.T) {
	minimal := alignedDungeon(t, 5)
	loopy := alignedDungeon(t, 5)

	few := minimal.ConnectRegions(0)
	many := loopy.ConnectRegions(100)
	if many <= few {
		t.Errorf("extra doors should add connections: %d with 0%%, %d with 100%%", few, many)
	}

	// Doors are never opened side by side
	d := loopy.Dungeon()
	for p, tile := range d.All() {
		if tile.Label != components.TileDoor {
			continue
		}
		for _, n := range d.Neighbors(p, components.Cardinal()) {
			if d.Tile(n).Label == components.TileDoor {
				t.Errorf("adjacent doors at %s and %s", p, n)
			}
		}
	}
}

func TestConnectRegionsSingleRegion(t *testing.T) {
	g := newTestGenerator(7, 7, 1)
	g.GrowMaze(components.Pt(1, 1), components.TileCorridor)

	if doors := g.ConnectRegions(50); doors != 0 {
		t.Errorf("a single region needs no doors, got %d", doors)
	}
}

func TestPruneDeadEndsRemovesTree(t *testing.T) {
	g := newTestGenerator(7, 7, 1)
	g.GrowMaze(components.Pt(1, 1), components.TileCorridor)

	removed := g.PruneDeadEnds(0)
	if removed != 17 {
		t.Errorf("a maze with no rooms is all dead ends, expected 17 removed, got %d", removed)
	}
	for p, tile := range g.All() {
		if tile.Label != components.TileWall || g.Region(p) != components.NoRegion {
			t.Fatalf("%s: expected wall with no region", p)
		}
	}
}

func TestPruneDeadEndsLimitedPasses(t *testing.T) {
	g := newTestGenerator(7, 7, 1)
	g.GrowMaze(components.Pt(1, 1), components.TileCorridor)

	first := g.PruneDeadEnds(1)
	if first == 0 {
		t.Fatal("one pass should remove the maze's dead ends")
	}
	rest := g.PruneDeadEnds(0)
	if first+rest != 17 {
		t.Errorf("expected 17 tiles removed in total, got %d + %d", first, rest)
	}
}

func TestPruneDeadEndsKeepsConnectedDungeon(t *testing.T) {
	g := alignedDungeon(t, 8)
	g.ConnectRegions(10)
	floors := countLabel(g, components.TileFloor)

	g.PruneDeadEnds(0)

	d := g.Dungeon()
	if countLabel(g, components.TileFloor) != floors {
		t.Error("pruning must not touch room floors")
	}
	for p, tile := range d.All() {
		if tile.Label != components.TileCorridor && tile.Label != components.TileDoor {
			continue
		}
		if countExits(d, p) < 2 {
			t.Errorf("%s: dead end left behind", p)
		}
	}
	if got, want := len(reachable(d, g.Rooms()[0].TopLeft())), openTiles(d); got != want {
		t.Errorf("pruning broke connectivity: %d of %d open tiles reachable", got, want)
	}
}

func TestOpenMask(t *testing.T) {
	d := components.NewDungeon(3, 3)
	d.SetTile(components.Pt(1, 0), components.TileCorridor)
	d.SetTile(components.Pt(0, 1), components.TileFloor)

	mask := openMask(d, components.Pt(1, 1))
	if mask != ConnectTop|ConnectLeft {
		t.Errorf("expected top|left, got %b", mask)
	}
	if countExits(d, components.Pt(1, 1)) != 2 {
		t.Errorf("expected 2 exits")
	}
	if countExits(d, components.Pt(0, 0)) != 2 {
		t.Errorf("corner next to both open tiles should have 2 exits")
	}
}
