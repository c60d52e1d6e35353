package constant

import "time"

// Frame cadence
const (
	// FrameUpdateInterval is the rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// NoticeDuration is how long a notification banner stays visible
	NoticeDuration = 1500 * time.Millisecond
)

// Particles
const (
	ParticleCount       = 20
	ParticleMinSpeed    = 2.0
	ParticleSpeedSpread = 3.0
	ParticleGravity     = 0.1
	ParticleDrag        = 0.98
	ParticleLifeDecay   = 0.02

	// ParticleScale converts the reference pixel velocities into cell units
	ParticleScale = 1.0 / CellSize
)

// Spectator
const (
	// SpectatorSendBuffer is the per-connection outbound message buffer
	SpectatorSendBuffer = 256

	// SpectatorWriteWait bounds a single websocket write
	SpectatorWriteWait = 2 * time.Second
)
