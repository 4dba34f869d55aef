package messages

// EventKind identifies a feedback event for the presentation layer
type EventKind int

const (
	EventPlayerHit EventKind = iota // Player took unblocked damage
	EventBlock                      // Player took blocked damage
	EventPlayerDeath
	EventEnemyHit
	EventEnemyDeath
	EventLevelComplete
	EventWaveSpawned
	EventComboHit
	EventComboBonus
	EventOutOfAmmo
	EventWeaponReload
	EventWeaponSwitch
	EventDodge
	EventAttack
	EventProjectileFired
)

var eventKindNames = [...]string{
	EventPlayerHit:       "hit",
	EventBlock:           "block",
	EventPlayerDeath:     "player-death",
	EventEnemyHit:        "enemy-hit",
	EventEnemyDeath:      "death",
	EventLevelComplete:   "level-complete",
	EventWaveSpawned:     "wave-spawned",
	EventComboHit:        "combo-hit",
	EventComboBonus:      "combo-bonus",
	EventOutOfAmmo:       "out-of-ammo",
	EventWeaponReload:    "weapon-reload",
	EventWeaponSwitch:    "weapon-switch",
	EventDodge:           "dodge",
	EventAttack:          "attack",
	EventProjectileFired: "projectile-fired",
}

func (k EventKind) String() string {
	if int(k) >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// FeedbackEvent is emitted by the simulation for sound, text and particle collaborators.
// Amount is damage, score bonus, ammo or level depending on Kind.
type FeedbackEvent struct {
	Kind     EventKind `json:"kind"`
	Tick     int       `json:"tick"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Amount   int       `json:"amount"`
	Count    int       `json:"count,omitempty"`
	EntityID int       `json:"entity,omitempty"`
}
