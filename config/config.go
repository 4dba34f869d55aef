package config

import "image/color"

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity   float64 // Added to vertical speed every tick
	Friction  float64 // Multiplies both speed components every tick (player)
	IdleDecay float64 // Multiplies enemy speed while not pursuing
}

// ArenaConfig is the layout used when no map file is supplied
type ArenaConfig struct {
	Width        float64
	Height       float64
	GroundOffset float64 // Distance of the ground line from the bottom edge
	CellSize     int     // resolv broad-phase cell size
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Movement
	JumpSpeed          float64 // Negative impulse applied on jump
	JumpStickThreshold float64 // moveY below this counts as a jump request
	DefaultSpeed       float64
	DefaultHealth      float64

	// Stamina
	MaxStamina   float64
	StaminaRegen float64

	// Blocking
	BlockMinStamina float64 // Stamina required to raise the guard
	BlockCost       float64 // Stamina spent when the guard goes up
	BlockDrain      float64 // Stamina drained per tick while the guard stays up
	BlockFactor     float64 // Damage multiplier while blocking

	// Dodging
	DodgeCost     float64
	DodgeCooldown int
	DodgeInvuln   int
	DodgeDuration int
	DodgeSpeed    float64

	// Combat
	InvulnFrames    int // Frames of invincibility after taking damage
	AttackAnimation int // Frames the attack pose is held
	MeleeBonusRange int // Random melee bonus is drawn from [0, MeleeBonusRange)
	HitboxHeight    float64
	HitboxOffsetY   float64 // Hitbox top is this far above the body center
}

// EnemyConfig contains enemy system configuration shared by every type
type EnemyConfig struct {
	Types map[EnemyType]EnemyTypeConfig

	AggroRange      float64
	AttackRange     float64
	MeleeCooldown   int
	RangedCooldown  int
	AttackAnimation int
	KnockbackForce  float64
}

// WaveConfig contains encounter generation values
type WaveConfig struct {
	BaseCount      int
	PerLevel       int
	BossEvery      int
	MinSeparation  float64 // Spawns closer than this on both axes are rejected
	SpawnMargin    float64
	SpawnFloor     float64 // Vertical band reserved above the bottom edge
	LevelBonus     int
	MaxSpawnTries  int
	SpawnPool      []EnemyType
	StartingLevel  int
	BossSpawnLeft  float64 // Boss x is Width - BossSpawnLeft
	BossSpawnAbove float64 // Boss y is Height - BossSpawnAbove
}

// ComboConfig contains combo scoring values
type ComboConfig struct {
	Window    int // Frames before an idle combo is evaluated
	Threshold int // Combos above this earn a bonus
	BonusPer  int
}

// ProjectileConfig contains arrow values
type ProjectileConfig struct {
	PlayerSpeed float64
	EnemySpeed  float64
	Radius      float64
}

// SimConfig contains fixed-step loop values
type SimConfig struct {
	TicksPerSecond  int
	MaxStepsPerTick int
}

// Config holds general window configuration for the front-end
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Arena ArenaConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Wave WaveConfig
var Combo ComboConfig
var Projectile ProjectileConfig
var Sim SimConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 212, G: 175, B: 55, A: 255}
	Blood        = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	Steel        = color.RGBA{R: 42, G: 77, B: 105, A: 255}
	Night        = color.RGBA{R: 26, G: 26, B: 46, A: 255}
	Forest       = color.RGBA{R: 45, G: 90, B: 39, A: 255}
	Ground       = color.RGBA{R: 45, G: 27, B: 105, A: 255}
	Orange       = color.RGBA{R: 255, G: 69, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Silver       = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 230}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Physics = PhysicsConfig{
		Gravity:   0.5,
		Friction:  0.9,
		IdleDecay: 0.9,
	}

	Arena = ArenaConfig{
		Width:        1280,
		Height:       720,
		GroundOffset: 100,
		CellSize:     32,
	}

	Player = PlayerConfig{
		Width:  50,
		Height: 80,

		JumpSpeed:          -15,
		JumpStickThreshold: -0.3,
		DefaultSpeed:       5,
		DefaultHealth:      100,

		MaxStamina:   100,
		StaminaRegen: 0.5,

		BlockMinStamina: 10,
		BlockCost:       2,
		BlockDrain:      0.25,
		BlockFactor:     0.3,

		DodgeCost:     30,
		DodgeCooldown: 60,
		DodgeInvuln:   20,
		DodgeDuration: 18, // 300ms
		DodgeSpeed:    15,

		InvulnFrames:    30,
		AttackAnimation: 20,
		MeleeBonusRange: 5,
		HitboxHeight:    40,
		HitboxOffsetY:   20,
	}

	Enemy = EnemyConfig{
		Types:           enemyTypes(),
		AggroRange:      300,
		AttackRange:     60,
		MeleeCooldown:   60,
		RangedCooldown:  120,
		AttackAnimation: 15,
		KnockbackForce:  10,
	}

	Wave = WaveConfig{
		BaseCount:      5,
		PerLevel:       2,
		BossEvery:      3,
		MinSeparation:  200,
		SpawnMargin:    50,
		SpawnFloor:     300,
		LevelBonus:     200,
		MaxSpawnTries:  1000,
		SpawnPool:      []EnemyType{EnemySoldier, EnemySoldier, EnemyArcher, EnemyKnight},
		StartingLevel:  1,
		BossSpawnLeft:  150,
		BossSpawnAbove: 220,
	}

	Combo = ComboConfig{
		Window:    120, // 2000ms
		Threshold: 3,
		BonusPer:  50,
	}

	Projectile = ProjectileConfig{
		PlayerSpeed: 15,
		EnemySpeed:  10,
		Radius:      5,
	}

	Sim = SimConfig{
		TicksPerSecond:  60,
		MaxStepsPerTick: 5,
	}

	Weapons = weaponTable()
	Classes = classTable()
	Effects = effectTable()
	Autopilot = autopilotTable()
}
