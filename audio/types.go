// Package audio synthesizes the game cues with beep and plays them through the speaker
package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food consumed
	SoundLevelUp                   // Level increased
	SoundGameOver                  // Fatal collision
	soundTypeCount
)

var soundNames = [...]string{
	SoundEat:      "eat",
	SoundLevelUp:  "levelup",
	SoundGameOver: "gameover",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType maps a cue name to its sound
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound")
)
