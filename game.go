package main

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"dungeon-carver/config"
	"dungeon-carver/generation"
	"dungeon-carver/systems"
)

// Viewer implements ebiten.Game interface. It shows one generated dungeon
// and regenerates it on request; it never modifies the map itself.
type Viewer struct {
	cfg       config.Config
	generator generation.MapGenerator
	renderer  *DungeonRenderer
	camera    *systems.CameraSystem
	messages  *systems.MessageLog
	log       zerolog.Logger
}

// NewViewer creates a viewer and generates the first map
func NewViewer(cfg config.Config, logger zerolog.Logger) *Viewer {
	gen := generation.NewDungeonGenerator(cfg)
	gen.SetLogger(logger)

	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = config.TileSize
	}

	v := &Viewer{
		cfg:       cfg,
		generator: gen,
		renderer:  NewDungeonRenderer(tileSize),
		camera:    systems.NewCameraSystem(0, 0),
		messages:  systems.NewMessageLog(),
		log:       logger,
	}

	v.generate()
	v.messages.AddTyped("R: regenerate  C: clear  arrows: scroll  F: fullscreen  Esc: quit", systems.MessageTypeSystem)

	return v
}

// generate runs the generator and records the outcome in the message log
func (v *Viewer) generate() {
	stats, err := v.generator.Generate()
	switch {
	case errors.Is(err, generation.ErrRoomTargetNotReached):
		v.messages.AddTyped(err.Error(), systems.MessageTypeAlert)
	case err != nil:
		v.log.Error().Err(err).Msg("generation failed")
		v.messages.AddTyped("generation failed: "+err.Error(), systems.MessageTypeAlert)
	}

	d := v.generator.Dungeon()
	v.camera.SetMapSize(d.Width, d.Height)
	v.messages.Add(fmt.Sprintf("seed %d: %d rooms, %d regions", stats.Seed, stats.Rooms, stats.Regions))
}

// Update handles input
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.generator.SetSeed(time.Now().UnixNano())
		v.generate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.generator.Clear()
		v.messages.Add("map cleared")
	}

	// Handle fullscreen toggle
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// Move camera based on arrow key input
	moveSpeed := 2
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.camera.Move(0, -moveSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.camera.Move(0, moveSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.camera.Move(-moveSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.camera.Move(moveSpeed, 0)
	}

	return nil
}

// Draw draws the map and the most recent message
func (v *Viewer) Draw(screen *ebiten.Image) {
	// Clear the screen with black background
	screen.Fill(color.RGBA{0, 0, 0, 255})

	v.renderer.Draw(screen, v.generator.Dungeon(), v.camera, config.StatusBarHeight)

	if recent := v.messages.RecentMessages(1); len(recent) > 0 {
		ebitenutil.DebugPrint(screen, recent[0].Text)
	}
}

// Layout implements ebiten.Game's Layout
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.camera.ViewWidth = outsideWidth / v.renderer.TileSize
	v.camera.ViewHeight = (outsideHeight - config.StatusBarHeight) / v.renderer.TileSize
	d := v.generator.Dungeon()
	v.camera.SetMapSize(d.Width, d.Height)

	// Use the full window size
	return outsideWidth, outsideHeight
}
