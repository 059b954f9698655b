//go:build ebiten

package app

import (
	"time"

	"biomemap/internal/mapgen"
	"biomemap/internal/render"
	"biomemap/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth  = 220
	minHeight = 240
)

// Game adapts a map generator to the ebiten.Game interface.
type Game struct {
	gen     *mapgen.Generator
	painter *render.GridPainter
	blocks  *render.BlockPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	uploaded *mapgen.Result
}

// New constructs a Game for the provided generator and runs it once.
func New(gen *mapgen.Generator, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := gen.Size()
	g := &Game{
		gen:     gen,
		painter: render.NewGridPainter(size.W, size.H),
		blocks:  render.NewBlockPainter(),
		overlay: ui.NewOverlay(gen, scale),
		hud:     ui.NewHUD(gen, hudWidth),
		scale:   scale,
	}
	g.blocks.OriginX = float64(size.H) * g.blocks.TileW / 2
	gen.SetEmitter(g.blocks)
	gen.Regenerate()
	return g
}

// Update handles per-frame input and regenerates on request.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.gen.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.gen.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.gen.SetMode(g.gen.Config().Mode.Next())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		mode := mapgen.ModeDistance
		if g.gen.Config().Mode == mapgen.ModeDistance {
			mode = mapgen.ModeDirect
		}
		g.gen.SetMode(mode)
	}
	g.overlay.Update()
	g.hud.Update(g.viewWidth())
	return nil
}

// Draw renders the current map.
func (g *Game) Draw(screen *ebiten.Image) {
	res := g.gen.Result()
	if res == nil {
		return
	}
	if res.Image != nil {
		if res != g.uploaded {
			g.painter.Upload(res.Image)
			g.uploaded = res
		}
		g.painter.Blit(screen, g.scale)
		g.overlay.Draw(screen)
	} else {
		g.blocks.OriginY = float64(res.MaxHeight()) * g.blocks.UnitH
		g.blocks.Draw(screen)
	}
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewSize()
	if h < minHeight {
		h = minHeight
	}
	return w + hudWidth, h
}

func (g *Game) viewWidth() int {
	w, _ := g.viewSize()
	return w
}

func (g *Game) viewSize() (int, int) {
	s := g.gen.Size()
	if res := g.gen.Result(); res != nil && res.Config.Mode == mapgen.ModeTerrain {
		return g.blocks.Bounds(s.W, s.H, res.MaxHeight())
	}
	return s.W * g.scale, s.H * g.scale
}
