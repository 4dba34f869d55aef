package config

import (
	"fmt"
	"strings"
)

// AutopilotDifficulty affects reaction time and decision quality of the scripted player
type AutopilotDifficulty int

const (
	AutopilotEasy AutopilotDifficulty = iota
	AutopilotNormal
	AutopilotHard
)

// AutopilotDifficultyConfig holds tuning values for autopilot behavior at a specific difficulty
type AutopilotDifficultyConfig struct {
	ReactionDelay    int     // Frames between decisions
	EngageRange      float64 // Horizontal distance to start swinging
	RetreatThreshold float64 // Health fraction below which the autopilot guards
	DodgeRange       float64 // Incoming arrows closer than this trigger a dodge
}

// AutopilotConfigData holds all autopilot configuration
type AutopilotConfigData struct {
	Difficulties map[AutopilotDifficulty]AutopilotDifficultyConfig
}

// Autopilot holds autopilot configuration
var Autopilot AutopilotConfigData

func autopilotTable() AutopilotConfigData {
	return AutopilotConfigData{
		Difficulties: map[AutopilotDifficulty]AutopilotDifficultyConfig{
			AutopilotEasy: {
				ReactionDelay:    30, // 0.5 second reaction time
				EngageRange:      40,
				RetreatThreshold: 0.2,
				DodgeRange:       0,
			},
			AutopilotNormal: {
				ReactionDelay:    15,
				EngageRange:      55,
				RetreatThreshold: 0.3,
				DodgeRange:       80,
			},
			AutopilotHard: {
				ReactionDelay:    5, // Near-instant reaction
				EngageRange:      60,
				RetreatThreshold: 0.15,
				DodgeRange:       120,
			},
		},
	}
}

var difficultyNames = map[AutopilotDifficulty]string{
	AutopilotEasy:   "easy",
	AutopilotNormal: "normal",
	AutopilotHard:   "hard",
}

func (d AutopilotDifficulty) String() string {
	if n, ok := difficultyNames[d]; ok {
		return n
	}
	return "unknown"
}

// ParseDifficulty maps a difficulty name to its value
func ParseDifficulty(name string) (AutopilotDifficulty, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d, n := range difficultyNames {
		if n == name {
			return d, nil
		}
	}
	return AutopilotNormal, fmt.Errorf("unknown autopilot difficulty %q", name)
}
