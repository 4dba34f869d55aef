package factory

import (
	"github.com/automoto/throne-wars/archetypes"
	"github.com/automoto/throne-wars/components"
	cfg "github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, x, y float64, enemyType cfg.EnemyType) *donburi.Entry {
	// Use the requested enemy type, default to soldier if not found
	typeCfg, exists := cfg.Enemy.Types[enemyType]
	if !exists {
		typeCfg = cfg.Enemy.Types[cfg.EnemySoldier]
	}

	var extra []donburi.IComponentType
	if typeCfg.Type == cfg.EnemyBoss {
		extra = append(extra, tags.Boss)
	}
	enemy := archetypes.Enemy.Spawn(w, extra...)

	// Create collision object
	obj := resolv.NewObject(x, y, typeCfg.Width, typeCfg.Height)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, typeCfg.Width, typeCfg.Height))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	SpaceOf(w).Add(obj)

	battle := components.Battle.Get(components.Battle.MustFirst(w))
	battle.NextEnemyID++

	components.Enemy.SetValue(enemy, components.EnemyData{
		ID:         battle.NextEnemyID,
		Type:       typeCfg.Type,
		TypeConfig: typeCfg,
		Alive:      true,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		Friction: 1,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: typeCfg.Health,
		Max:     typeCfg.Health,
	})

	return enemy
}

// DestroyEnemy removes an enemy and its body from the world.
func DestroyEnemy(w donburi.World, enemy *donburi.Entry) {
	RemoveBody(w, enemy)
	w.Remove(enemy.Entity())
}

// RemoveBody takes an entry's body out of the broad-phase grid.
func RemoveBody(w donburi.World, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(w); ok {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil && obj.Space != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
}
