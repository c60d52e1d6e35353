package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound: short high sine
const (
	EatSoundFreq     = 800.0
	EatSoundDuration = 100 * time.Millisecond
	EatSoundAttack   = 2 * time.Millisecond
	EatSoundRelease  = 90 * time.Millisecond
)

// Level Up Sound: rising square sweep
const (
	LevelUpFreqStart = 400.0
	LevelUpFreqEnd   = 800.0
	LevelUpSweep     = 200 * time.Millisecond
	LevelUpDuration  = 300 * time.Millisecond
	LevelUpAttack    = 5 * time.Millisecond
	LevelUpRelease   = 250 * time.Millisecond
)

// Game Over Sound: falling saw sweep
const (
	GameOverFreqStart     = 400.0
	GameOverFreqEnd       = 100.0
	GameOverSoundDuration = 500 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 450 * time.Millisecond
)
