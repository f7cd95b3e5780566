package terminal

import (
	"fmt"
	"strings"
	"time"

	coresys "github.com/bounceshot/shooter/internal/core/system"
	"github.com/bounceshot/shooter/internal/game"
	"github.com/bounceshot/shooter/internal/geom"
	"github.com/bounceshot/shooter/internal/system"
	"github.com/gdamore/tcell/v2"
)

const (
	hudRows   = 1
	aimLength = 4 // cells of aim guide drawn above the cannon
)

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBullet   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBounced  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleCannon   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleAim      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
)

// View draws the game onto a tcell screen. The top row is the HUD; the rest
// of the terminal is the virtual space scaled to fit. Phase 3 (Output).
type View struct {
	screen  tcell.Screen
	game    *game.Game
	journal *system.Journal
}

func NewView(screen tcell.Screen, g *game.Game, journal *system.Journal) *View {
	return &View{screen: screen, game: g, journal: journal}
}

func (v *View) Phase() coresys.Phase { return coresys.PhaseOutput }

func (v *View) Update(_ time.Duration) {
	v.screen.Clear()
	if !v.game.Space().IsZero() {
		v.drawField()
	}
	v.drawHUD()
	v.screen.Show()
}

func (v *View) drawField() {
	v.game.EachEnemy(func(e *game.Enemy) {
		v.fillRect(e.Rect(), '█', styleEnemy)
	})
	v.game.EachBullet(func(b *game.Bullet) {
		style := styleBullet
		if b.Bounced() {
			style = styleBounced
		}
		x, y := v.cell(geom.Vec2{X: b.X(), Y: b.Y()})
		v.screen.SetContent(x, y, '•', nil, style)
	})

	s := v.game.Space()
	base := geom.Vec2{X: s.W / 2, Y: s.H}
	cx, cy := v.cell(base)
	dir := v.game.Cannon().Direction()
	cols, rows := v.fieldSize()
	// one aim dot per cell along the firing direction
	step := geom.Vec2{X: dir.X * s.W / float64(cols), Y: dir.Y * s.H / float64(rows)}
	for i := 1; i <= aimLength; i++ {
		x, y := v.cell(base.Add(step.Scale(float64(i))))
		if x == cx && y == cy {
			continue
		}
		v.screen.SetContent(x, y, '·', nil, styleAim)
	}
	v.screen.SetContent(cx, cy, '▲', nil, styleCannon)
}

func (v *View) drawHUD() {
	cur := system.RoundStats{}
	if v.journal != nil {
		cur = v.journal.Current()
	}
	hud := fmt.Sprintf("LIFE %s  STEP %d  SHOTS %d  KILLS %d  AIM %.0f°",
		strings.Repeat("♥", v.game.Life()), v.game.Step(), cur.Shots, cur.Kills, v.game.Cannon().Angle())
	v.drawText(0, 0, hud, styleHUD)

	var banner string
	switch v.game.State() {
	case game.StateNotStarted:
		banner = " press r to start, q to quit "
	case game.StateGameOver:
		banner = " GAME OVER - r restart, q quit "
	default:
		return
	}
	cols, rows := v.screen.Size()
	v.drawText((cols-len([]rune(banner)))/2, rows/2, banner, styleGameOver)
}

func (v *View) fillRect(r geom.Rect, ch rune, style tcell.Style) {
	x0, y0 := v.cell(geom.Vec2{X: r.X, Y: r.Y})
	x1, y1 := v.cell(geom.Vec2{X: r.Right(), Y: r.Bottom()})
	x1 = max(x1-1, x0)
	y1 = max(y1-1, y0)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (v *View) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// fieldSize is the playfield in cells, below the HUD.
func (v *View) fieldSize() (int, int) {
	cols, rows := v.screen.Size()
	return max(cols, 1), max(rows-hudRows, 1)
}

// cell maps a virtual point to a screen cell, clamped to the playfield.
func (v *View) cell(p geom.Vec2) (int, int) {
	s := v.game.Space()
	cols, rows := v.fieldSize()
	x := int(p.X / s.W * float64(cols))
	y := int(p.Y / s.H * float64(rows))
	x = min(max(x, 0), cols-1)
	y = min(max(y, 0), rows-1)
	return x, y + hudRows
}

// DisplayRatio is the height/width ratio of the playfield, counting a
// terminal cell as twice as tall as it is wide.
func DisplayRatio(screen tcell.Screen) float64 {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= hudRows {
		return 1
	}
	return float64(rows-hudRows) * 2 / float64(cols)
}
