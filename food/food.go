// Package food provides food types and the spawner that places them
package food

import (
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/grid"
)

// Type is the kind of food, determining points and side effects
type Type uint8

const (
	Normal Type = iota
	Double
	Speed
)

func (t Type) String() string {
	switch t {
	case Normal:
		return "normal"
	case Double:
		return "double"
	case Speed:
		return "speed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the type by name
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Points returns the score awarded for eating food of this type
func (t Type) Points() int {
	switch t {
	case Double:
		return constant.DoubleFoodPoints
	case Speed:
		return constant.SpeedFoodPoints
	default:
		return constant.NormalFoodPoints
	}
}

// Food is the single active food item
type Food struct {
	Position grid.Cell `json:"position"`
	Type     Type      `json:"type"`
}

// Weights are relative draw weights per food type
type Weights struct {
	Normal int
	Double int
	Speed  int
}

// DefaultWeights returns the 90/5/5 distribution
func DefaultWeights() Weights {
	return Weights{
		Normal: constant.FoodWeightNormal,
		Double: constant.FoodWeightDouble,
		Speed:  constant.FoodWeightSpeed,
	}
}

func (w Weights) total() int {
	return w.Normal + w.Double + w.Speed
}

// pick maps a roll in [0,total) to a type, in Normal, Double, Speed order
func (w Weights) pick(roll int) Type {
	if roll < w.Normal {
		return Normal
	}
	if roll < w.Normal+w.Double {
		return Double
	}
	return Speed
}
