package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/controls"
	"github.com/automoto/throne-wars/render"
	"github.com/automoto/throne-wars/session"
	"github.com/automoto/throne-wars/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Frames the final state stays on screen before the game over screen
const gameOverDelay = 90

// BattleScene plays one session with keyboard or gamepad input
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     Settings
	class        cfg.ClassID

	session *session.Session
	input   controls.State
	paused  bool
	shake   render.Shake
	canvas  *ebiten.Image

	overTimer int
	once      sync.Once
}

// NewBattleScene creates a battle for class
func NewBattleScene(sc SceneChanger, settings Settings, class cfg.ClassID) *BattleScene {
	return &BattleScene{sceneChanger: sc, settings: settings, class: class}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()

	if !bs.session.IsOver() {
		return
	}
	bs.overTimer++
	if bs.overTimer >= gameOverDelay {
		bs.sceneChanger.ChangeScene(NewGameOverScene(bs.sceneChanger, bs.settings, bs.class, bs.session.Summary()))
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if bs.canvas == nil || bs.canvas.Bounds().Dx() != w || bs.canvas.Bounds().Dy() != h {
		bs.canvas = ebiten.NewImage(w, h)
	}
	bs.canvas.Clear()
	bs.ecs.DrawLayer(render.LayerArena, bs.canvas)
	bs.ecs.DrawLayer(render.LayerEntities, bs.canvas)
	bs.ecs.DrawLayer(render.LayerEffects, bs.canvas)

	op := &ebiten.DrawImageOptions{}
	if !bs.paused {
		op.GeoM.Translate(bs.shake.Advance())
	}
	screen.DrawImage(bs.canvas, op)

	bs.ecs.DrawLayer(render.LayerHUD, screen)
	if bs.paused {
		render.DrawPause(screen)
	}
}

func (bs *BattleScene) configure() {
	bs.session = session.New(session.Options{
		Class:  bs.class,
		Seed:   bs.settings.Seed,
		Layout: bs.settings.Layout,
	})
	bs.ecs = ecs.NewECS(bs.session.World())

	bs.ecs.AddSystem(bs.updateInput)
	bs.ecs.AddSystem(bs.updateSession)

	bs.ecs.AddRenderer(render.LayerArena, render.DrawArena)
	bs.ecs.AddRenderer(render.LayerEntities, render.DrawCharacters)
	bs.ecs.AddRenderer(render.LayerEntities, render.DrawProjectiles)
	bs.ecs.AddRenderer(render.LayerEffects, render.DrawEffects)
	bs.ecs.AddRenderer(render.LayerHUD, render.DrawHUD)
}

func (bs *BattleScene) updateInput(_ *ecs.ECS) {
	bs.input.Poll()

	if bs.session.IsOver() {
		return
	}
	if bs.input.Action(controls.ActionPause).JustPressed {
		bs.paused = !bs.paused
	}
	if bs.paused && bs.input.Action(controls.ActionMenuSelect).JustPressed {
		log.Printf("Battle abandoned: %+v", bs.session.Summary())
		bs.sceneChanger.ChangeScene(NewMenuScene(bs.sceneChanger, bs.settings))
	}
}

func (bs *BattleScene) updateSession(_ *ecs.ECS) {
	if bs.paused {
		return
	}

	// One simulation step per frame at the default rate; the accumulator absorbs the rest
	delta := float64(cfg.Sim.TicksPerSecond) / float64(ebiten.TPS())
	result := bs.session.Tick(bs.input.Intent(), delta)

	for _, ev := range result.Events {
		switch ev.Kind {
		case messages.EventPlayerHit:
			bs.shake.Trigger(6, 12)
		case messages.EventBlock:
			bs.shake.Trigger(2, 6)
		case messages.EventPlayerDeath:
			bs.shake.Trigger(12, 30)
		case messages.EventEnemyDeath:
			if ev.Amount >= cfg.Enemy.Types[cfg.EnemyBoss].KillScore {
				bs.shake.Trigger(10, 24)
			}
		}
	}
}
