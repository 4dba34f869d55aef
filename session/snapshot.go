package session

import (
	"github.com/automoto/throne-wars/components"
	"github.com/automoto/throne-wars/systems"
	"github.com/automoto/throne-wars/tags"
	"github.com/yohamta/donburi"
)

// Snapshot is a read-only copy of the session state after a tick. It holds no references into
// the world and is safe to keep or hand to another goroutine.
type Snapshot struct {
	Tick       int  `json:"tick"`
	Level      int  `json:"level"`
	Score      int  `json:"score"`
	Combo      int  `json:"combo"`
	ComboTimer int  `json:"combo_timer"`
	Over       bool `json:"over"`

	Arena       ArenaView        `json:"arena"`
	Player      PlayerView       `json:"player"`
	Enemies     []EnemyView      `json:"enemies"`
	Projectiles []ProjectileView `json:"projectiles"`
	Effects     []EffectView     `json:"effects"`
}

type ArenaView struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	GroundY float64 `json:"ground_y"`
}

type WeaponView struct {
	Name    string  `json:"name"`
	Damage  int     `json:"damage"`
	Range   float64 `json:"range"`
	Ammo    int     `json:"ammo"`
	MaxAmmo int     `json:"max_ammo"`
	Ranged  bool    `json:"ranged"`
}

type PlayerView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Facing float64 `json:"facing"`
	Class  string  `json:"class"`

	Health     float64 `json:"health"`
	MaxHealth  float64 `json:"max_health"`
	Stamina    float64 `json:"stamina"`
	MaxStamina float64 `json:"max_stamina"`

	Weapons       []WeaponView `json:"weapons"`
	CurrentWeapon int          `json:"current_weapon"`

	Attacking       bool `json:"attacking"`
	AttackAnimation int  `json:"attack_animation"`
	Blocking        bool `json:"blocking"`
	Dodging         bool `json:"dodging"`
	Invincible      bool `json:"invincible"`
	Grounded        bool `json:"grounded"`
	Defeated        bool `json:"defeated"`
}

// Weapon returns the equipped weapon view.
func (p PlayerView) Weapon() WeaponView {
	if p.CurrentWeapon < 0 || p.CurrentWeapon >= len(p.Weapons) {
		return WeaponView{}
	}
	return p.Weapons[p.CurrentWeapon]
}

type EnemyView struct {
	ID        int     `json:"id"`
	Type      string  `json:"type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
	Alive     bool    `json:"alive"`
	Attacking bool    `json:"attacking"`
	Boss      bool    `json:"boss"`
}

type ProjectileView struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Angle      float64 `json:"angle"`
	FromPlayer bool    `json:"from_player"`
}

type EffectView struct {
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Progress float64 `json:"progress"`
	Radius   float64 `json:"radius"`
	Text     string  `json:"text,omitempty"`
	Amount   int     `json:"amount,omitempty"`
}

func takeSnapshot(w donburi.World) Snapshot {
	battle := systems.GetBattle(w)
	combo := systems.GetCombo(w)
	layout := systems.GetArena(w)

	snap := Snapshot{
		Tick:       battle.Tick,
		Level:      battle.Level,
		Score:      battle.Score,
		Combo:      combo.Count,
		ComboTimer: combo.Timer,
		Over:       battle.Over,
		Arena: ArenaView{
			Width:   layout.Width,
			Height:  layout.Height,
			GroundY: layout.GroundY,
		},
	}

	if playerEntry, ok := systems.GetPlayer(w); ok {
		snap.Player = playerView(playerEntry)
	}

	for _, e := range systems.EnemyEntries(w) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)
		hp := components.Health.Get(e)
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:        enemy.ID,
			Type:      enemy.Type.String(),
			X:         obj.X,
			Y:         obj.Y,
			Width:     obj.W,
			Height:    obj.H,
			Health:    hp.Current,
			MaxHealth: hp.Max,
			Alive:     enemy.Alive,
			Attacking: enemy.Attacking,
			Boss:      e.HasComponent(tags.Boss),
		})
	}

	for _, e := range systems.ProjectileEntries(w) {
		p := components.Projectile.Get(e)
		if !p.Alive {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			X:          p.Position.X,
			Y:          p.Position.Y,
			Angle:      p.Angle,
			FromPlayer: p.FromPlayer,
		})
	}

	tags.Effect.Each(w, func(e *donburi.Entry) {
		effect := components.Effect.Get(e)
		snap.Effects = append(snap.Effects, EffectView{
			Kind:     effect.Kind.String(),
			X:        effect.Position.X,
			Y:        effect.Position.Y,
			Progress: effect.Progress(),
			Radius:   effect.Radius,
			Text:     effect.Text,
			Amount:   effect.Amount,
		})
	})

	return snap
}

func playerView(e *donburi.Entry) PlayerView {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)
	hp := components.Health.Get(e)
	stamina := components.Stamina.Get(e)
	physics := components.Physics.Get(e)
	loadout := components.Loadout.Get(e)

	weapons := make([]WeaponView, 0, len(loadout.Weapons))
	for _, slot := range loadout.Weapons {
		weapons = append(weapons, WeaponView{
			Name:    slot.ID.String(),
			Damage:  slot.Damage,
			Range:   slot.Range,
			Ammo:    slot.Ammo,
			MaxAmmo: slot.MaxAmmo,
			Ranged:  slot.Ranged,
		})
	}

	return PlayerView{
		X:               obj.X,
		Y:               obj.Y,
		Width:           obj.W,
		Height:          obj.H,
		Facing:          player.Direction,
		Class:           player.Class.String(),
		Health:          hp.Current,
		MaxHealth:       hp.Max,
		Stamina:         stamina.Current,
		MaxStamina:      stamina.Max,
		Weapons:         weapons,
		CurrentWeapon:   loadout.Current,
		Attacking:       player.Attacking,
		AttackAnimation: player.AttackAnimation,
		Blocking:        player.Blocking,
		Dodging:         player.Dodging,
		Invincible:      player.Invincible(),
		Grounded:        physics.OnGround,
		Defeated:        player.Defeated,
	}
}
