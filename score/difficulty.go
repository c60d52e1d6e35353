package score

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/vi-snake/constant"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for unknown names
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty is an immutable speed profile selected once per session
type Difficulty struct {
	Key           string // EASY, NORMAL, HARD; used as persistence key
	Name          string
	InitialSpeed  time.Duration
	SpeedDecrease time.Duration
	MinSpeed      time.Duration
}

var (
	Easy = Difficulty{
		Key:           "EASY",
		Name:          "Easy",
		InitialSpeed:  constant.EasyInitialSpeed,
		SpeedDecrease: constant.EasySpeedDecrease,
		MinSpeed:      constant.EasyMinSpeed,
	}
	Normal = Difficulty{
		Key:           "NORMAL",
		Name:          "Normal",
		InitialSpeed:  constant.NormalInitialSpeed,
		SpeedDecrease: constant.NormalSpeedDecrease,
		MinSpeed:      constant.NormalMinSpeed,
	}
	Hard = Difficulty{
		Key:           "HARD",
		Name:          "Hard",
		InitialSpeed:  constant.HardInitialSpeed,
		SpeedDecrease: constant.HardSpeedDecrease,
		MinSpeed:      constant.HardMinSpeed,
	}
)

// Difficulties lists the profiles in menu order
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Normal, Hard}
}

// ParseDifficulty resolves a key or name, case-insensitive
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if strings.EqualFold(s, d.Key) || strings.EqualFold(s, d.Name) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// CalculateSpeed returns the tick interval for level under d, floored at MinSpeed
func CalculateSpeed(level int, d Difficulty) time.Duration {
	if level < 1 {
		level = 1
	}
	speed := d.InitialSpeed - time.Duration(level-1)*d.SpeedDecrease
	if speed < d.MinSpeed {
		return d.MinSpeed
	}
	return speed
}
