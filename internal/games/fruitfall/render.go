package fruitfall

import (
	"fmt"
	"time"

	"github.com/vovakirdan/fruitfall/internal/core"
	"github.com/vovakirdan/fruitfall/internal/games/fruitfall/engine"
)

const (
	cellW     = 2 // Screen columns per grid cell
	hudWidth  = 20
	hudGap    = 2
	flashRate = 8 // Ticks per half period of the armed hazard flash
)

type glyph struct {
	text  string
	color core.Color
}

var fruitGlyphs = map[engine.Kind]glyph{
	engine.KindStrawberry: {"S ", core.ColorRed},
	engine.KindBanana:     {"B ", core.ColorYellow},
	engine.KindGrape:      {"G ", core.ColorPurple},
	engine.KindPineapple:  {"P ", core.ColorOrange},
	engine.KindApple:      {"A ", core.ColorGreen},
	engine.KindCherry:     {"C ", core.ColorPink},
	engine.KindPeach:      {"H ", core.ColorMagenta},
}

var specialGlyphs = map[engine.Kind]glyph{
	engine.KindBomb:         {"**", core.ColorBrightWhite},
	engine.KindArrow:        {"//", core.ColorCyan},
	engine.KindSkull:        {"XX", core.ColorWhite},
	engine.KindPoop:         {"@@", core.ColorBrown},
	engine.KindClown:        {"??", core.ColorMagenta},
	engine.KindFire:         {"^^", core.ColorOrange},
	engine.KindFreeze:       {"##", core.ColorIce},
	engine.KindExploding:    {"░░", core.ColorYellow},
	engine.KindBigExploding: {"▓▓", core.ColorBrightYellow},
	engine.KindSoiled:       {"~~", core.ColorBrown},
	engine.KindFrozen:       {"≡≡", core.ColorIce},
}

// glyphFor returns the two-column glyph of a cell kind.
func glyphFor(k engine.Kind, cfg engine.Config) glyph {
	if gl, ok := fruitGlyphs[k]; ok {
		return gl
	}
	switch k {
	case engine.KindGun:
		if cfg.GunDir == engine.DirRight {
			return glyph{">>", core.ColorGray}
		}
		return glyph{"<<", core.ColorGray}
	case engine.KindArrow:
		if cfg.ArrowDir == engine.DirDownRight || cfg.ArrowDir == engine.DirUpLeft {
			return glyph{`\\`, core.ColorCyan}
		}
	}
	if gl, ok := specialGlyphs[k]; ok {
		return gl
	}
	return glyph{" .", core.ColorGray}
}

// Render draws the board, the falling column and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	snap := g.eng.Snapshot()
	cfg := g.eng.Config()

	boardW := snap.Grid.W*cellW + 2
	boardH := snap.Grid.H + 2
	totalW := boardW + hudGap + hudWidth

	if dst.Width() < totalW || dst.Height() < boardH {
		g.renderTooSmall(dst, totalW, boardH)
		return
	}

	area := core.NewRect(0, 0, totalW, boardH).CenteredIn(dst.Width(), dst.Height())
	board := core.NewRect(area.X, area.Y, boardW, boardH)

	dst.DrawBox(board, core.ColorWhite)
	g.renderGrid(dst, board, snap, cfg)
	g.renderColumn(dst, board, snap, cfg)
	g.renderHUD(dst, board, snap)
	g.renderOverlays(dst, board, snap)
}

func (g *Game) renderTooSmall(dst *core.Screen, w, h int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h), core.ColorGray)
}

func (g *Game) drawCell(dst *core.Screen, board core.Rect, c engine.Coord, gl glyph) {
	dst.DrawTextColor(board.X+1+c.X*cellW, board.Y+1+c.Y, gl.text, gl.color)
}

func (g *Game) renderGrid(dst *core.Screen, board core.Rect, snap engine.Snapshot, cfg engine.Config) {
	armed := make(map[engine.Coord]bool, len(snap.Hazards))
	for _, h := range snap.Hazards {
		if h.Armed {
			armed[h.Anchor] = true
		}
	}
	flashOn := (g.tick/flashRate)%2 == 0

	for y := 0; y < snap.Grid.H; y++ {
		for x := 0; x < snap.Grid.W; x++ {
			c := engine.C(x, y)
			k := snap.Grid.Get(c)
			if k == engine.KindEmpty {
				continue
			}
			gl := glyphFor(k, cfg)
			if armed[c] && flashOn {
				gl.color = core.ColorRed
			}
			g.drawCell(dst, board, c, gl)
		}
	}
}

func (g *Game) renderColumn(dst *core.Screen, board core.Rect, snap engine.Snapshot, cfg engine.Config) {
	if snap.Column == nil {
		return
	}
	for i, k := range snap.Column.Cells {
		c := snap.Column.Coord(i)
		if c.Y < 0 {
			continue
		}
		g.drawCell(dst, board, c, glyphFor(k, cfg))
	}
}

func (g *Game) renderHUD(dst *core.Screen, board core.Rect, snap engine.Snapshot) {
	x, y := board.Right()+hudGap, board.Y

	title := "FRUITFALL"
	if g.mode == ModeLevels {
		title = "FRUITFALL LEVELS"
	}
	dst.DrawTextColor(x, y, title, core.ColorBrightYellow)

	lines := []string{
		fmt.Sprintf("Score  %d", snap.Score),
		fmt.Sprintf("Level  %d", snap.Level),
		fmt.Sprintf("Time   %s", formatElapsed(snap.Elapsed)),
		fmt.Sprintf("Drop   %dms", snap.DropInterval.Milliseconds()),
		fmt.Sprintf("Diff   %s", g.cfg.PresetName(snap.Difficulty)),
	}
	for i, l := range lines {
		dst.DrawText(x, y+2+i, l)
	}

	row := y + 3 + len(lines)
	dst.DrawTextColor(x, row, "Fruits", core.ColorGray)
	for i, k := range snap.Palette {
		gl := fruitGlyphs[k]
		dst.DrawTextColor(x+i*cellW, row+1, gl.text, gl.color)
	}

	help := []string{"←/→ move", "↑ rotate  ↓ drop", "p pause  r restart", "1-4 difficulty"}
	helpY := board.Bottom() - len(help)

	row += 3
	if len(snap.Hazards) > 0 {
		dst.DrawTextColor(x, row, "Hazards", core.ColorGray)
		for i, h := range snap.Hazards {
			if row+1+i >= helpY-1 {
				break
			}
			state := "arming"
			if h.Armed {
				state = "armed"
			}
			left := max(h.TriggerAt-snap.Elapsed, 0)
			dst.DrawTextColor(x, row+1+i,
				fmt.Sprintf("%-6s %-6s %.1fs", h.Kind, state, left.Seconds()), core.ColorGray)
		}
	}

	for i, h := range help {
		dst.DrawTextColor(x, helpY+i, h, core.ColorGray)
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect, snap engine.Snapshot) {
	midY := board.Y + board.H/2
	center := func(y int, text string, c core.Color) {
		x := board.X + (board.W-len([]rune(text)))/2
		dst.DrawTextColor(x, y, text, c)
	}

	switch {
	case snap.GameOver:
		center(midY-1, " GAME OVER ", core.ColorRed)
		center(midY, fmt.Sprintf(" Score %d ", snap.Score), core.ColorBrightWhite)
		center(midY+1, " r: restart ", core.ColorGray)
	case g.paused:
		center(midY, " PAUSED ", core.ColorBrightYellow)
	case g.bannerLeft > 0:
		center(board.Y+1, g.banner, g.bannerColor)
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
