package audio

import (
	"errors"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constant"
)

// SoundManager plays game cues through a single speaker mixer
// Every operation is safe before Initialize; cues are dropped until then
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a manager for cfg, nil uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Initialize sets up the speaker, double initialization is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
// beep has no speaker close; clearing the mixer silences it
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts the named cue, implementing the engine's fire-and-forget AudioCue
func (sm *SoundManager) Play(cue string) {
	st, ok := ParseSoundType(cue)
	if !ok {
		log.Printf("audio: unknown cue %q", cue)
		return
	}
	if err := sm.PlaySound(st); err != nil && !errors.Is(err, ErrNotInitialized) {
		log.Printf("audio: play %s: %v", cue, err)
	}
}

// PlaySound mixes the sound in, muted playback is silently skipped
func (sm *SoundManager) PlaySound(st SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted {
		return nil
	}
	if !sm.initialized {
		return ErrNotInitialized
	}

	streamer, err := GetSoundEffect(st, sm.cfg)
	if err != nil {
		return err
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[st]++
	return nil
}

// ToggleMute flips mute, clearing sounds in flight when muting
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// SetMuted forces the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Played returns how many times st was mixed in
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st]
}
