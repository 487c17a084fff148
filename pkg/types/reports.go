package types

// ScoreRow pairs a player name with an aggregated score.
type ScoreRow struct {
	Name  string
	Score int64
}

// VictoryComparison is one line of the ComparePlayers victory table.
type VictoryComparison struct {
	Name         string
	Points       int64
	FirstEarned  bool
	SecondEarned bool
}

// LibraryGame is one game in a player's library with the player's progress.
type LibraryGame struct {
	Name            string
	EarnedVictories int
	TotalVictories  int
	Score           int64
	IGN             string
}

// VictoryStat is a victory of a game with the number of library players who
// earned it.
type VictoryStat struct {
	Name    string
	Points  int64
	Earners int
}

// PlayerStat is a player with a game in their library and their progress in it.
type PlayerStat struct {
	Name            string
	Score           int64
	EarnedVictories int
}

// VictoryHolder is a player who earned a victory.
type VictoryHolder struct {
	Name      string
	InLibrary bool
}
