package engine

// Audio cue names
const (
	CueEat      = "eat"
	CueLevelUp  = "levelup"
	CueGameOver = "gameover"
)

// Renderer draws one frame, called once per frame after the simulation step
type Renderer interface {
	DrawFrame(state FrameState)
}

// AudioCue plays a named cue, fire-and-forget
type AudioCue interface {
	Play(cue string)
}

// Muter is implemented by audio collaborators that support muting
type Muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// RendererFunc adapts a function to a Renderer
type RendererFunc func(state FrameState)

func (f RendererFunc) DrawFrame(state FrameState) { f(state) }
