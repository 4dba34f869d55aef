package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Fraction returns Current/Max in [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()

type StaminaData struct {
	Current float64
	Max     float64
	Regen   float64 // Per frame while neither blocking nor dodging
}

var Stamina = donburi.NewComponentType[StaminaData]()
