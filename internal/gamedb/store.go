package gamedb

import (
	"context"

	"github.com/mesh-intelligence/gamedb/pkg/types"
)

// Store is the relational store the commands run against. The sqlite
// package provides the production implementation.
type Store interface {
	PlayerName(ctx context.Context, id uint64) (string, bool, error)
	GameName(ctx context.Context, id uint64) (string, bool, error)
	VictoryName(ctx context.Context, gameID, victoryID uint64) (string, bool, error)
	PlayerInitials(ctx context.Context, id uint64) (string, bool, error)

	InsertPlayer(ctx context.Context, p types.Player) error
	InsertGame(ctx context.Context, g types.Game) error
	InsertVictory(ctx context.Context, v types.Victory) error
	InsertLibraryEntry(ctx context.Context, e types.LibraryEntry) error
	InsertFriendship(ctx context.Context, f types.Friendship) error
	InsertAchievement(ctx context.Context, a types.Achievement) error

	FriendsWhoPlay(ctx context.Context, playerID, gameID uint64) ([]types.ScoreRow, error)
	GameTotals(ctx context.Context, firstID, secondID, gameID uint64) ([]types.ScoreRow, error)
	CompareVictories(ctx context.Context, firstID, secondID, gameID uint64) ([]types.VictoryComparison, error)
	FriendScores(ctx context.Context, playerID uint64) ([]types.ScoreRow, error)
	LibraryGames(ctx context.Context, playerID uint64) ([]types.LibraryGame, error)
	GameVictories(ctx context.Context, gameID uint64) ([]types.VictoryStat, error)
	GamePlayers(ctx context.Context, gameID uint64) ([]types.PlayerStat, error)
	LibraryCount(ctx context.Context, gameID uint64) (int, error)
	VictoryHolders(ctx context.Context, gameID, victoryID uint64) ([]types.VictoryHolder, error)
	Ranking(ctx context.Context) ([]types.ScoreRow, error)
}
