package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-snake/constant"
)

// Wave is an oscillator shape
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSawtooth
)

// at returns the wave value in [-1, 1] for a phase in [0, 1)
func (w Wave) at(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Tone describes one synthesized cue
// Pitch glides exponentially From -> To over Sweep (0 glides over the whole Duration)
// Gain rises linearly over Attack and falls linearly over the final Release
type Tone struct {
	Wave     Wave
	From     float64
	To       float64
	Sweep    time.Duration
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Level    float64 // scale before the configured volume
}

// cueTones maps each sound to its synthesis parameters
var cueTones = [soundTypeCount]Tone{
	SoundEat: {
		Wave:     WaveSine,
		From:     constant.EatSoundFreq,
		To:       constant.EatSoundFreq,
		Duration: constant.EatSoundDuration,
		Attack:   constant.EatSoundAttack,
		Release:  constant.EatSoundRelease,
		Level:    1,
	},
	SoundLevelUp: {
		Wave:     WaveSquare,
		From:     constant.LevelUpFreqStart,
		To:       constant.LevelUpFreqEnd,
		Sweep:    constant.LevelUpSweep,
		Duration: constant.LevelUpDuration,
		Attack:   constant.LevelUpAttack,
		Release:  constant.LevelUpRelease,
		Level:    0.5, // square is harsh at full scale
	},
	SoundGameOver: {
		Wave:     WaveSawtooth,
		From:     constant.GameOverFreqStart,
		To:       constant.GameOverFreqEnd,
		Duration: constant.GameOverSoundDuration,
		Attack:   constant.GameOverSoundAttack,
		Release:  constant.GameOverSoundRelease,
		Level:    1,
	},
}

// toneStreamer renders a Tone sample by sample
type toneStreamer struct {
	tone  Tone
	rate  beep.SampleRate
	total int // samples
	sweep int
	att   int
	rel   int

	pos   int
	phase float64
}

// NewToneStreamer returns a finite streamer playing t at rate
func NewToneStreamer(t Tone, rate beep.SampleRate) beep.Streamer {
	ts := &toneStreamer{
		tone:  t,
		rate:  rate,
		total: rate.N(t.Duration),
		sweep: rate.N(t.Sweep),
		att:   rate.N(t.Attack),
		rel:   rate.N(t.Release),
	}
	if ts.sweep <= 0 || ts.sweep > ts.total {
		ts.sweep = ts.total
	}
	// Attack wins when the ramps overlap
	if ts.att > ts.total {
		ts.att = ts.total
	}
	if ts.att+ts.rel > ts.total {
		ts.rel = ts.total - ts.att
	}
	return ts
}

// freqAt is the instantaneous pitch in Hz at sample pos
func (ts *toneStreamer) freqAt(pos int) float64 {
	from, to := ts.tone.From, ts.tone.To
	if from == to || from <= 0 || to <= 0 || ts.sweep == 0 {
		return from
	}
	if pos >= ts.sweep {
		return to
	}
	return from * math.Pow(to/from, float64(pos)/float64(ts.sweep))
}

// gainAt is the envelope value in [0, 1] at sample pos
func (ts *toneStreamer) gainAt(pos int) float64 {
	if ts.att > 0 && pos < ts.att {
		return float64(pos) / float64(ts.att)
	}
	if releaseStart := ts.total - ts.rel; ts.rel > 0 && pos >= releaseStart {
		return float64(ts.total-pos) / float64(ts.rel)
	}
	return 1
}

func (ts *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && ts.pos < ts.total {
		v := ts.tone.Wave.at(ts.phase) * ts.gainAt(ts.pos) * ts.tone.Level
		samples[n][0], samples[n][1] = v, v

		ts.phase += ts.freqAt(ts.pos) / float64(ts.rate)
		ts.phase -= math.Floor(ts.phase)
		ts.pos++
		n++
	}
	return n, n > 0
}

func (ts *toneStreamer) Err() error { return nil }

// newVolume wraps s in a linear volume; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// GetSoundEffect returns a fresh streamer for the given sound at the configured volume
func GetSoundEffect(st SoundType, cfg *AudioConfig) (beep.Streamer, error) {
	if st < 0 || st >= soundTypeCount {
		return nil, ErrUnknownSound
	}
	tone := NewToneStreamer(cueTones[st], beep.SampleRate(cfg.SampleRate))
	return newVolume(tone, cfg.EffectVolumes[st]*cfg.MasterVolume), nil
}
