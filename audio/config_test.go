package audio

import (
	"testing"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("no default volume for %s", st)
		}
	}
}

func TestLoadAudioConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		enabled bool
		master  float64
		eat     float64
	}{
		{"defaults", nil, true, 0.5, 0.6},
		{"disabled", map[string]string{EnvAudioEnabled: "false"}, false, 0.5, 0.6},
		{"bad bool ignored", map[string]string{EnvAudioEnabled: "maybe"}, true, 0.5, 0.6},
		{"master volume", map[string]string{EnvMasterVolume: "80"}, true, 0.8, 0.6},
		{"master clamped", map[string]string{EnvMasterVolume: "250"}, true, 1.0, 0.6},
		{"master negative", map[string]string{EnvMasterVolume: "-5"}, true, 0, 0.6},
		{"sfx volumes", map[string]string{EnvSFXVolumes: `{"eat": 0.25, "bogus": 1}`}, true, 0.5, 0.25},
		{"sfx bad json", map[string]string{EnvSFXVolumes: `{eat`}, true, 0.5, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAudioEnabled, "")
			t.Setenv(EnvMasterVolume, "")
			t.Setenv(EnvSFXVolumes, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := LoadAudioConfig()
			if cfg.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Enabled, tt.enabled)
			}
			if cfg.MasterVolume != tt.master {
				t.Errorf("MasterVolume = %v, want %v", cfg.MasterVolume, tt.master)
			}
			if cfg.EffectVolumes[SoundEat] != tt.eat {
				t.Errorf("eat volume = %v, want %v", cfg.EffectVolumes[SoundEat], tt.eat)
			}
		})
	}
}

func TestParseSoundType(t *testing.T) {
	for _, name := range []string{"eat", "levelup", "gameover"} {
		st, ok := ParseSoundType(name)
		if !ok || st.String() != name {
			t.Errorf("ParseSoundType(%q) = %v, %v", name, st, ok)
		}
	}
	if _, ok := ParseSoundType("boom"); ok {
		t.Error("unknown cue parsed")
	}
}
