// Package event carries game notifications from the simulation to its collaborators
package event

// Type identifies a game event
type Type uint8

const (
	// EventGameStart marks a new session entering Playing
	// Trigger: Start, Reset | Payload: Difficulty, HighScore
	EventGameStart Type = iota

	// EventFoodEaten marks the head consuming food
	// Trigger: tick with food collision | Payload: FoodType, Points, Score, Level
	EventFoodEaten

	// EventLevelUp marks a level increase caused by eating
	// Payload: Level
	EventLevelUp

	// EventBoostStart marks SPEED food activating or refreshing the boost
	EventBoostStart

	// EventNotice is a short player-facing banner message
	// Payload: Text
	EventNotice

	// EventPaused and EventResumed mark the pause toggle
	EventPaused
	EventResumed

	// EventGameOver marks the fatal tick
	// Payload: Reason, Score, Level, HighScore, NewHighScore
	EventGameOver

	// EventMenu marks the return to the menu
	EventMenu

	eventTypeCount
)

var typeNames = [...]string{
	EventGameStart:  "game_start",
	EventFoodEaten:  "food_eaten",
	EventLevelUp:    "level_up",
	EventBoostStart: "boost_start",
	EventNotice:     "notice",
	EventPaused:     "paused",
	EventResumed:    "resumed",
	EventGameOver:   "game_over",
	EventMenu:       "menu",
}

func (t Type) String() string {
	if t < eventTypeCount {
		return typeNames[t]
	}
	return "unknown"
}

// AllTypes lists every event type, for handlers that want everything
func AllTypes() []Type {
	types := make([]Type, 0, eventTypeCount)
	for t := Type(0); t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Event is a single game notification
// Uses primitive fields only so it serializes without adapters
type Event struct {
	Type         Type   `json:"-"`
	Name         string `json:"type"`
	Tick         uint64 `json:"tick"`
	FoodType     string `json:"food_type,omitempty"`
	Points       int    `json:"points,omitempty"`
	Score        int    `json:"score"`
	Level        int    `json:"level"`
	HighScore    int    `json:"high_score,omitempty"`
	NewHighScore bool   `json:"new_high_score,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Text         string `json:"text,omitempty"`
}

// New creates an event of type t with its name filled in
func New(t Type) Event {
	return Event{Type: t, Name: t.String()}
}
