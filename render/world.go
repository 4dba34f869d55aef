// Package render draws a battle world with flat shapes. It reads components directly and never
// changes simulation state.
package render

import (
	"image/color"
	"math"

	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/systems"
	"github.com/automoto/throne-wars/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Draw layers, back to front
const (
	LayerArena ecs.LayerID = iota
	LayerEntities
	LayerEffects
	LayerHUD
)

// DrawArena paints the sky and the ground strip.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	layout := systems.GetArena(e.World)

	vector.FillRect(screen, 0, 0, float32(layout.Width), float32(layout.Height), cfg.Display.Background, false)
	vector.FillRect(screen,
		0, float32(layout.GroundY),
		float32(layout.Width), float32(layout.Height-layout.GroundY),
		cfg.Display.GroundFill, false)
	vector.StrokeLine(screen,
		0, float32(layout.GroundY),
		float32(layout.Width), float32(layout.GroundY),
		2, cfg.Display.GroundLine, false)
}

// DrawCharacters renders living enemies with health bars, then the player on top.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	for _, entry := range systems.EnemyEntries(e.World) {
		enemy := components.Enemy.Get(entry)
		if !enemy.Alive {
			continue
		}
		o := components.Object.Get(entry)

		c, ok := cfg.Display.Enemies[enemy.Type]
		if !ok {
			c = cfg.Blood
		}
		if enemy.Attacking {
			c = cfg.Display.EnemyAttacking
		}
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
		if entry.HasComponent(tags.Boss) {
			vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 3, cfg.Gold, false)
		}

		hp := components.Health.Get(entry)
		drawBar(screen, o.X, o.Y-10, o.W, 5, hp.Current/hp.Max, cfg.Red)
	}

	playerEntry, ok := systems.GetPlayer(e.World)
	if !ok {
		return
	}
	drawPlayer(screen, playerEntry)
}

func drawPlayer(screen *ebiten.Image, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	o := components.Object.Get(entry)

	c := cfg.Display.Player
	switch {
	case player.Dodging:
		c = cfg.Display.PlayerDodging
	case player.Blocking:
		c = cfg.Display.PlayerBlocking
	case player.Invincible() && player.InvulnFrames%6 < 3:
		c = cfg.Display.PlayerHurt
	}
	vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)

	// Facing marker
	eyeX := o.X + o.W*0.75
	if player.Direction == cfg.DirectionLeft {
		eyeX = o.X + o.W*0.25
	}
	vector.FillCircle(screen, float32(eyeX), float32(o.Y+18), 4, cfg.White, true)

	if player.Attacking {
		weapon := components.Loadout.Get(entry).Equipped()
		if !weapon.Ranged {
			hb := systems.MeleeHitbox(entry, weapon.Range)
			vector.FillRect(screen, float32(hb.X), float32(hb.Y), float32(hb.W), float32(hb.H), cfg.Display.Swing, false)
		}
	}
}

// DrawProjectiles renders every arrow as a short line along its heading.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	length := cfg.Display.ArrowLength
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if !p.Alive {
			return
		}
		c := cfg.Display.EnemyArrow
		if p.FromPlayer {
			c = cfg.Display.PlayerArrow
		}
		tailX := p.Position.X - math.Cos(p.Angle)*length
		tailY := p.Position.Y - math.Sin(p.Angle)*length
		vector.StrokeLine(screen,
			float32(tailX), float32(tailY),
			float32(p.Position.X), float32(p.Position.Y),
			3, c, true)
	})
}

func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64, fill color.RGBA) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Display.HUDBarBack, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), fill, false)
}

// fade scales a premultiplied color by alpha in [0, 1]
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
