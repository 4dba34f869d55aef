package config

// EnemyType identifies an enemy kind in the fixed enemy table
type EnemyType int

const (
	EnemySoldier EnemyType = iota
	EnemyKnight
	EnemyArcher
	EnemyBoss
)

func (t EnemyType) String() string {
	switch t {
	case EnemySoldier:
		return "soldier"
	case EnemyKnight:
		return "knight"
	case EnemyArcher:
		return "archer"
	case EnemyBoss:
		return "boss"
	}
	return "unknown"
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Type      EnemyType
	Health    float64
	Speed     float64
	Damage    int
	Width     float64
	Height    float64
	IsRanged  bool // Ranged enemies also fire arrows on RangedCooldown
	KillScore int
}

func enemyTypes() map[EnemyType]EnemyTypeConfig {
	return map[EnemyType]EnemyTypeConfig{
		EnemySoldier: {
			Type:      EnemySoldier,
			Health:    50,
			Speed:     2,
			Damage:    10,
			Width:     50,
			Height:    80,
			KillScore: 100,
		},
		EnemyKnight: {
			Type:      EnemyKnight,
			Health:    100,
			Speed:     1.5,
			Damage:    20,
			Width:     50,
			Height:    80,
			KillScore: 100,
		},
		EnemyArcher: {
			Type:      EnemyArcher,
			Health:    40,
			Speed:     3,
			Damage:    15,
			Width:     50,
			Height:    80,
			IsRanged:  true,
			KillScore: 100,
		},
		EnemyBoss: {
			Type:      EnemyBoss,
			Health:    300,
			Speed:     1,
			Damage:    30,
			Width:     100,
			Height:    120,
			KillScore: 500,
		},
	}
}
