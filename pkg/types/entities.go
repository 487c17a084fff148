package types

import "math"

// Player is a registered gamer. Players are created once and never change.
type Player struct {
	ID   uint64
	Name string
}

// Game is a title that players can add to their library.
type Game struct {
	ID   uint64
	Name string
}

// Victory is an achievement defined for one game. IDs are unique only within
// the owning game. Points may be negative and lie within
// [MinVictoryPoints, MaxVictoryPoints].
type Victory struct {
	GameID uint64
	ID     uint64
	Name   string
	Points int64
}

// Victory points are bounded so that a player's summed score fits in a
// signed 64-bit SQLite integer however many victories they earn.
const (
	MinVictoryPoints = math.MinInt32
	MaxVictoryPoints = math.MaxInt32
)

// LibraryEntry records that a player plays a game under an in-game name.
type LibraryEntry struct {
	PlayerID uint64
	GameID   uint64
	IGN      string
}

// Friendship links two players. The store keeps both directions.
type Friendship struct {
	PlayerID uint64
	FriendID uint64
}

// Achievement records that a player earned a victory.
type Achievement struct {
	PlayerID  uint64
	GameID    uint64
	VictoryID uint64
}
