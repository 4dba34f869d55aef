package factory

import (
	"github.com/automoto/throne-wars/archetypes"
	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64, class cfg.ClassID) *donburi.Entry {
	classCfg, ok := cfg.Classes[class]
	if !ok {
		classCfg = cfg.Classes[cfg.ClassNone]
	}

	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	SpaceOf(w).Add(obj)

	components.Player.SetValue(player, components.PlayerData{
		Class:     classCfg.ID,
		Speed:     classCfg.Speed,
		Direction: cfg.DirectionRight,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		Friction: cfg.Physics.Friction,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: classCfg.MaxHealth,
		Max:     classCfg.MaxHealth,
	})
	components.Stamina.SetValue(player, components.StaminaData{
		Current: cfg.Player.MaxStamina,
		Max:     cfg.Player.MaxStamina,
		Regen:   classCfg.Regen(),
	})

	loadout := components.LoadoutData{}
	for _, weapon := range classCfg.Loadout() {
		loadout.Weapons = append(loadout.Weapons, components.WeaponSlot{
			WeaponConfig: weapon,
			Ammo:         weapon.MaxAmmo,
		})
	}
	components.Loadout.SetValue(player, loadout)

	return player
}
