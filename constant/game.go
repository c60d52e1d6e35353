package constant

import "time"

// Board geometry
const (
	// BoardWidth and BoardHeight are the logical board size in pixels of the reference layout
	BoardWidth  = 800
	BoardHeight = 600

	// CellSize is the edge length of one grid cell in board pixels
	CellSize = 20

	// GridCols and GridRows are the discrete board dimensions
	GridCols = BoardWidth / CellSize  // 40
	GridRows = BoardHeight / CellSize // 30
)

// Snake
const (
	// InitialSnakeLength is the body length of a freshly spawned snake
	InitialSnakeLength = 5
)

// Difficulty profiles, tick interval in milliseconds of game time
const (
	EasyInitialSpeed  = 150 * time.Millisecond
	EasySpeedDecrease = 3 * time.Millisecond
	EasyMinSpeed      = 50 * time.Millisecond

	NormalInitialSpeed  = 100 * time.Millisecond
	NormalSpeedDecrease = 5 * time.Millisecond
	NormalMinSpeed      = 30 * time.Millisecond

	HardInitialSpeed  = 70 * time.Millisecond
	HardSpeedDecrease = 7 * time.Millisecond
	HardMinSpeed      = 20 * time.Millisecond
)

// Scoring
const (
	NormalFoodPoints = 10
	DoubleFoodPoints = 20
	SpeedFoodPoints  = 10

	// LevelUpScore is the score span of one level
	LevelUpScore = 100
)

// Food type weights, relative
const (
	FoodWeightNormal = 90
	FoodWeightDouble = 5
	FoodWeightSpeed  = 5

	// FoodSampleFactor bounds rejection sampling at FoodSampleFactor*cells draws before scanning
	FoodSampleFactor = 4
)

// Speed boost
const (
	BoostDuration   = 3 * time.Second
	BoostMultiplier = 0.7
)

// Persistence
const (
	// LeaderboardSize is the number of retained leaderboard entries
	LeaderboardSize = 10
)
