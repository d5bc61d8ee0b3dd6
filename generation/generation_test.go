package generation

import (
	"errors"
	"testing"

	"dungeon-carver/components"
	"dungeon-carver/config"
)

func newTestGenerator(height, width int, seed int64) *DungeonGenerator {
	cfg := config.Default()
	cfg.MapHeight = height
	cfg.MapWidth = width
	cfg.Seed = seed
	return NewDungeonGenerator(cfg)
}

func countLabel(g *DungeonGenerator, label components.TileType) int {
	return g.Dungeon().Count(label)
}

// --- Room placement ---

func TestPlaceRoomScenario(t *testing.T) {
	g := newTestGenerator(10, 10, 1)

	if !g.PlaceRoom(2, 2, 3, 3, 1, false) {
		t.Fatal("first room should fit")
	}
	if n := countLabel(g, components.TileFloor); n != 9 {
		t.Errorf("expected 9 floor tiles, got %d", n)
	}

	room := g.Rooms()[0]
	for p := range room.Points() {
		if g.Region(p) != room.Region {
			t.Errorf("%s: expected region %d, got %d", p, room.Region, g.Region(p))
		}
	}
	if room.Region != 0 {
		t.Errorf("first region should be 0, got %d", room.Region)
	}

	if g.PlaceRoom(2, 2, 3, 3, 1, false) {
		t.Error("overlapping room should be rejected")
	}
	if len(g.Rooms()) != 1 {
		t.Errorf("expected 1 room, got %d", len(g.Rooms()))
	}
	if g.Dungeon().CurrentRegion() != 0 {
		t.Errorf("rejected room must not use a region, counter at %d", g.Dungeon().CurrentRegion())
	}
}

func TestRoomFitsBoundary(t *testing.T) {
	g := newTestGenerator(10, 10, 1)

	cases := []struct {
		name   string
		room   *components.Room
		margin int
		want   bool
	}{
		{"margin touches last index", components.NewRoom(1, 1, 8, 8), 1, true},
		{"margin past right edge", components.NewRoom(1, 1, 9, 8), 1, false},
		{"margin past bottom edge", components.NewRoom(1, 1, 8, 9), 1, false},
		{"margin before origin", components.NewRoom(0, 0, 3, 3), 1, false},
		{"no margin at origin", components.NewRoom(0, 0, 3, 3), 0, true},
		{"anchor past the map", components.NewRoom(10, 10, 3, 3), 0, false},
		{"empty room", components.NewRoom(2, 2, 0, 3), 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.RoomFits(tc.room, tc.margin); got != tc.want {
				t.Errorf("expected %t, got %t", tc.want, got)
			}
		})
	}
}

func TestRoomFitsRejectsMarginOverlap(t *testing.T) {
	g := newTestGenerator(12, 12, 1)
	g.PlaceRoom(2, 2, 3, 3, 1, false)

	// One wall between the rooms is fine with margin 1, not with margin 2
	if !g.RoomFits(components.NewRoom(6, 2, 3, 3), 1) {
		t.Error("room separated by one wall should fit with margin 1")
	}
	if g.RoomFits(components.NewRoom(6, 2, 3, 3), 2) {
		t.Error("room separated by one wall should not fit with margin 2")
	}
}

func TestPlaceRoomIgnoreOverlap(t *testing.T) {
	g := newTestGenerator(10, 10, 1)
	g.PlaceRoom(2, 2, 3, 3, 1, false)

	if !g.PlaceRoom(3, 3, 3, 3, 1, true) {
		t.Fatal("forced room should always be placed")
	}
	if len(g.Rooms()) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(g.Rooms()))
	}
	if g.Region(components.Pt(5, 5)) != 1 {
		t.Errorf("forced room should own its cells, got region %d", g.Region(components.Pt(5, 5)))
	}

	// Forced rooms hanging over the edge are clipped
	g.PlaceRoom(8, 8, 5, 5, 0, true)
	if g.Tile(9, 9).Label != components.TileFloor {
		t.Error("clipped room should still carve its in-bounds cells")
	}
}

func TestPlaceRandomRoomsNeverOverlap(t *testing.T) {
	const margin = 1
	g := newTestGenerator(60, 60, 42)

	placed, err := g.PlaceRandomRooms(3, 9, 1, margin, 500, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placed == 0 || placed != len(g.Rooms()) {
		t.Fatalf("expected some rooms, placed=%d rooms=%d", placed, len(g.Rooms()))
	}

	rooms := g.Rooms()
	for j := 1; j < len(rooms); j++ {
		footprint := rooms[j].Expand(margin)
		for i := 0; i < j; i++ {
			if footprint.Intersects(rooms[i]) {
				t.Errorf("room %d margin overlaps room %d", j, i)
			}
		}
	}

	for i := 1; i < len(rooms); i++ {
		if rooms[i].Region <= rooms[i-1].Region {
			t.Errorf("room regions should increase: %d then %d", rooms[i-1].Region, rooms[i].Region)
		}
	}
}

func TestPlaceRandomRoomsSizes(t *testing.T) {
	g := newTestGenerator(80, 80, 3)
	if _, err := g.PlaceRandomRooms(3, 10, 3, 1, 300, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range g.Rooms() {
		for _, side := range []int{r.Width, r.Height} {
			if side != 3 && side != 6 && side != 9 {
				t.Errorf("side %d not in {3, 6, 9}", side)
			}
		}
	}
}

func TestPlaceRandomRoomsStopsAtTarget(t *testing.T) {
	g := newTestGenerator(80, 80, 9)

	placed, err := g.PlaceRandomRooms(3, 5, 1, 1, 1000, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placed != 3 || len(g.Rooms()) != 3 {
		t.Errorf("expected exactly 3 rooms, got placed=%d rooms=%d", placed, len(g.Rooms()))
	}
}

func TestPlaceRandomRoomsReportsMissedTarget(t *testing.T) {
	g := newTestGenerator(10, 10, 5)

	placed, err := g.PlaceRandomRooms(5, 6, 1, 1, 50, 5)
	if !errors.Is(err, ErrRoomTargetNotReached) {
		t.Fatalf("expected ErrRoomTargetNotReached, got %v", err)
	}
	if placed > 1 {
		t.Errorf("at most one 5x5 room fits a 10x10 map, got %d", placed)
	}
}

func TestPlaceRandomRoomsInvalidSizes(t *testing.T) {
	g := newTestGenerator(10, 10, 5)

	for _, args := range [][3]int{{0, 5, 1}, {5, 3, 1}, {3, 5, 0}} {
		if _, err := g.PlaceRandomRooms(args[0], args[1], args[2], 1, 10, 0); !errors.Is(err, ErrInvalidRoomSize) {
			t.Errorf("%v: expected ErrInvalidRoomSize, got %v", args, err)
		}
	}
}

// --- Maze carving ---

func TestGrowMazeScenario(t *testing.T) {
	g := newTestGenerator(7, 7, 11)
	g.SetWindingPercent(0)

	region := g.GrowMaze(components.Pt(1, 1), components.TileCorridor)
	if region != 0 {
		t.Fatalf("expected region 0, got %d", region)
	}

	for y := 1; y < 7; y += 2 {
		for x := 1; x < 7; x += 2 {
			p := components.Pt(x, y)
			if g.Tile(x, y).Label != components.TileCorridor {
				t.Errorf("lattice cell %s not carved", p)
			}
			if g.Region(p) != region {
				t.Errorf("lattice cell %s in region %d", p, g.Region(p))
			}
		}
	}

	// 9 lattice cells joined by 8 passages
	if n := countLabel(g, components.TileCorridor); n != 17 {
		t.Errorf("expected 17 corridor tiles, got %d", n)
	}
	for i := 0; i < 7; i++ {
		for _, p := range []components.Point{{X: i, Y: 0}, {X: i, Y: 6}, {X: 0, Y: i}, {X: 6, Y: i}} {
			if g.Dungeon().Tile(p).Label != components.TileWall {
				t.Errorf("border cell %s should stay wall", p)
			}
		}
	}
	if g.Dungeon().CurrentRegion() != 0 {
		t.Errorf("one maze run should use one region, counter at %d", g.Dungeon().CurrentRegion())
	}
}

func TestGrowMazeRequiresWallStart(t *testing.T) {
	g := newTestGenerator(7, 7, 1)
	g.Dungeon().SetTile(components.Pt(1, 1), components.TileFloor)

	if region := g.GrowMaze(components.Pt(1, 1), components.TileCorridor); region != components.NoRegion {
		t.Errorf("expected NoRegion, got %d", region)
	}
	if g.Dungeon().CurrentRegion() != components.NoRegion {
		t.Error("no region should be allocated for a rejected start")
	}
}

func TestCanCarve(t *testing.T) {
	g := newTestGenerator(7, 7, 1)
	start := components.Pt(1, 1)

	if !g.CanCarve(start, components.East) {
		t.Error("should carve east into solid rock")
	}
	if g.CanCarve(start, components.West) || g.CanCarve(start, components.North) {
		t.Error("should not carve towards the border")
	}
	if g.CanCarve(components.Pt(5, 1), components.East) {
		t.Error("three steps east of (5, 1) is off the map")
	}

	g.Dungeon().SetTile(components.Pt(3, 1), components.TileCorridor)
	if g.CanCarve(start, components.East) {
		t.Error("should not carve into an open cell")
	}
}

func TestBuildCorridorsKeepsWallThickness(t *testing.T) {
	for _, winding := range []int{0, 50, 100} {
		g := newTestGenerator(31, 41, 7)
		g.SetWindingPercent(winding)
		g.PlaceRandomRooms(3, 7, 2, 1, 200, 0)

		runs := g.BuildCorridors()
		if runs == 0 {
			t.Fatalf("winding %d: expected at least one maze run", winding)
		}

		for p, tile := range g.All() {
			if tile.Label != components.TileCorridor {
				continue
			}
			// Corridors live on lattice nodes and the passages between them,
			// never on even/even cells, so no two strands can touch side by side
			if p.X%2 == 0 && p.Y%2 == 0 {
				t.Errorf("winding %d: corridor on even/even cell %s", winding, p)
			}
		}

		// Every odd/odd cell outside the rooms has been claimed
		for y := 1; y < g.Height(); y += 2 {
			for x := 1; x < g.Width(); x += 2 {
				if g.Tile(x, y).Label == components.TileWall {
					t.Errorf("winding %d: lattice cell (%d, %d) left as wall", winding, x, y)
				}
			}
		}
	}
}

func TestBuildCorridorsRegionsIncrease(t *testing.T) {
	g := newTestGenerator(21, 21, 3)
	g.PlaceRoom(5, 5, 5, 5, 1, false)

	before := g.Dungeon().CurrentRegion()
	runs := g.BuildCorridors()
	after := g.Dungeon().CurrentRegion()

	if after-before != runs {
		t.Errorf("expected %d new regions, got %d", runs, after-before)
	}
	if g.Rooms()[0].Region != 0 {
		t.Errorf("room placed first should keep region 0")
	}
}

// --- Lifecycle ---

func TestClearAndInitialize(t *testing.T) {
	g := newTestGenerator(20, 20, 1)
	if _, err := g.Generate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g.Clear()
	if len(g.Rooms()) != 0 {
		t.Errorf("expected no rooms after Clear, got %d", len(g.Rooms()))
	}
	for p, tile := range g.All() {
		if tile.Label != components.TileWall || g.Region(p) != components.NoRegion {
			t.Fatalf("%s: expected wall with no region after Clear", p)
		}
	}
	if got := g.Dungeon().NewRegion(); got != 0 {
		t.Errorf("region ids should restart after Clear, got %d", got)
	}

	g.PlaceRoom(2, 2, 3, 3, 1, false)
	g.InitializeMap()
	if len(g.Rooms()) != 0 || countLabel(g, components.TileFloor) != 0 {
		t.Error("InitializeMap should reset rooms and tiles")
	}
}

func TestNegativeDimensionsAreNormalized(t *testing.T) {
	g := newTestGenerator(-10, -12, 1)
	if g.Height() != 10 || g.Width() != 12 {
		t.Errorf("expected 10x12, got %dx%d", g.Height(), g.Width())
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := newTestGenerator(41, 51, 1234)
	b := newTestGenerator(41, 51, 1234)

	statsA, errA := a.Generate()
	statsB, errB := b.Generate()
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if statsA != statsB {
		t.Errorf("stats differ: %+v vs %+v", statsA, statsB)
	}
	for p, tile := range a.All() {
		if b.Dungeon().Tile(p) != tile {
			t.Fatalf("maps differ at %s", p)
		}
	}
}

func TestGenerateStats(t *testing.T) {
	g := newTestGenerator(41, 41, 77)
	stats, err := g.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Seed != 77 {
		t.Errorf("expected seed 77, got %d", stats.Seed)
	}
	if stats.Rooms != len(g.Rooms()) {
		t.Errorf("expected %d rooms, got %d", len(g.Rooms()), stats.Rooms)
	}
	if stats.Floors+stats.Corridors+stats.Doors+stats.Walls != 41*41 {
		t.Errorf("tile counts do not add up: %+v", stats)
	}
	if stats.Regions != g.Dungeon().CurrentRegion()+1 {
		t.Errorf("expected %d regions, got %d", g.Dungeon().CurrentRegion()+1, stats.Regions)
	}
}

func TestGenerateReportsMissedTarget(t *testing.T) {
	cfg := config.Default()
	cfg.MapHeight, cfg.MapWidth = 12, 12
	cfg.RoomCount = 10
	cfg.RoomAttempts = 20
	cfg.Seed = 2

	g := NewDungeonGenerator(cfg)
	_, err := g.Generate()
	if !errors.Is(err, ErrRoomTargetNotReached) {
		t.Fatalf("expected ErrRoomTargetNotReached, got %v", err)
	}
	if countLabel(g, components.TileCorridor) == 0 {
		t.Error("corridors should still be built after a missed target")
	}
}
