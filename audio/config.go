package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-snake/constant"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "VI_SNAKE_MASTER_VOLUME"
	EnvSFXVolumes   = "VI_SNAKE_SFX_VOLUMES"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundEat:      0.6,
			SoundLevelUp:  0.5,
			SoundGameOver: 0.7,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables over the defaults
// Malformed values are ignored
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = clamp01(v)
				}
			}
		}
	}

	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
