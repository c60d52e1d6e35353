// Package particle simulates the eat explosion, advanced once per rendered frame
package particle

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/vi-snake/constant"
)

// Kind selects the particle palette, mirrors the food type that spawned it
type Kind uint8

const (
	KindNormal Kind = iota
	KindDouble
	KindSpeed
)

// Particle position and velocity are in cell units and cells per frame
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1.0 at spawn, removed at <= 0
	Kind   Kind
}

// Source provides the velocity jitter
type Source interface {
	Float64() float64
}

// System owns the live particles
type System struct {
	particles []Particle
	rng       Source
}

// NewSystem creates an empty system; nil rng uses a time-seeded source
func NewSystem(rng Source) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &System{
		particles: make([]Particle, 0, constant.ParticleCount*2),
		rng:       rng,
	}
}

// Explode spawns a radial burst centered on cell (cx, cy)
func (s *System) Explode(cx, cy int, kind Kind) {
	x := float64(cx) + 0.5
	y := float64(cy) + 0.5
	for i := 0; i < constant.ParticleCount; i++ {
		angle := 2 * math.Pi * float64(i) / constant.ParticleCount
		speed := (constant.ParticleMinSpeed + s.rng.Float64()*constant.ParticleSpeedSpread) * constant.ParticleScale
		s.particles = append(s.particles, Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: 1,
			Kind: kind,
		})
	}
}

// Update advances every particle by one frame and drops dead ones
func (s *System) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += constant.ParticleGravity * constant.ParticleScale
		p.VX *= constant.ParticleDrag
		p.VY *= constant.ParticleDrag
		p.Life -= constant.ParticleLifeDecay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}

// Snapshot returns a copy of the live particles
func (s *System) Snapshot() []Particle {
	if len(s.particles) == 0 {
		return nil
	}
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Len returns the number of live particles
func (s *System) Len() int {
	return len(s.particles)
}

// Clear removes all particles
func (s *System) Clear() {
	s.particles = s.particles[:0]
}
