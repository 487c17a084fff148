package gamedb

import (
	"context"

	"github.com/mesh-intelligence/gamedb/pkg/types"
)

// AddPlayerRequest is the bound form of AddPlayer.
type AddPlayerRequest struct {
	PlayerID uint64
	Name     string
}

// AddGameRequest is the bound form of AddGame.
type AddGameRequest struct {
	GameID uint64
	Name   string
}

// AddVictoryRequest is the bound form of AddVictory.
type AddVictoryRequest struct {
	GameID    uint64
	VictoryID uint64
	Name      string
	Points    int64
}

// PlaysRequest is the bound form of Plays.
type PlaysRequest struct {
	PlayerID uint64
	GameID   uint64
	IGN      string
}

// AddFriendsRequest is the bound form of AddFriends.
type AddFriendsRequest struct {
	Player1ID uint64
	Player2ID uint64
}

// WinVictoryRequest is the bound form of WinVictory.
type WinVictoryRequest struct {
	PlayerID  uint64
	GameID    uint64
	VictoryID uint64
}

// AddPlayer creates a player.
func (a *App) AddPlayer(ctx context.Context, req AddPlayerRequest) error {
	if req.PlayerID == 0 {
		return invalid("Player IDs must be positive.")
	}
	err := a.store.InsertPlayer(ctx, types.Player{ID: req.PlayerID, Name: req.Name})
	if err != nil {
		return duplicate(err, "Player #%d already exists!", req.PlayerID)
	}
	a.logger.Debug("player added", "player_id", req.PlayerID)
	a.printf("%s added as Player #%d.\n", req.Name, req.PlayerID)
	return nil
}

// AddGame creates a game.
func (a *App) AddGame(ctx context.Context, req AddGameRequest) error {
	if req.GameID == 0 {
		return invalid("Game IDs must be positive.")
	}
	err := a.store.InsertGame(ctx, types.Game{ID: req.GameID, Name: req.Name})
	if err != nil {
		return duplicate(err, "Game #%d already exists!", req.GameID)
	}
	a.logger.Debug("game added", "game_id", req.GameID)
	a.printf("%s added as Game #%d.\n", req.Name, req.GameID)
	return nil
}

// AddVictory creates a victory under an existing game.
func (a *App) AddVictory(ctx context.Context, req AddVictoryRequest) error {
	game, err := a.gameName(ctx, req.GameID)
	if err != nil {
		return err
	}
	if req.VictoryID == 0 {
		return invalid("Victory IDs must be positive.")
	}
	if req.Points < types.MinVictoryPoints || req.Points > types.MaxVictoryPoints {
		return invalid("Victory points must be between %d and %d.", types.MinVictoryPoints, types.MaxVictoryPoints)
	}

	err = a.store.InsertVictory(ctx, types.Victory{
		GameID: req.GameID,
		ID:     req.VictoryID,
		Name:   req.Name,
		Points: req.Points,
	})
	if err != nil {
		return duplicate(err, "Victory #%d already exists for %s!", req.VictoryID, game)
	}
	a.logger.Debug("victory added", "game_id", req.GameID, "victory_id", req.VictoryID)
	a.printf("'%s' added to %s as Victory #%d.\n", req.Name, game, req.VictoryID)
	return nil
}

// Plays adds a game to a player's library.
func (a *App) Plays(ctx context.Context, req PlaysRequest) error {
	player, err := a.playerName(ctx, req.PlayerID)
	if err != nil {
		return err
	}
	game, err := a.gameName(ctx, req.GameID)
	if err != nil {
		return err
	}

	err = a.store.InsertLibraryEntry(ctx, types.LibraryEntry{
		PlayerID: req.PlayerID,
		GameID:   req.GameID,
		IGN:      req.IGN,
	})
	if err != nil {
		return duplicate(err, "%s is already in %s's game list!", game, player)
	}
	a.logger.Debug("library entry added", "player_id", req.PlayerID, "game_id", req.GameID)
	a.printf("Added '%s' to player %s's game list.\n", game, player)
	return nil
}

// AddFriends makes two distinct players friends in both directions.
func (a *App) AddFriends(ctx context.Context, req AddFriendsRequest) error {
	player1, err := a.playerName(ctx, req.Player1ID)
	if err != nil {
		return err
	}
	player2, err := a.playerName(ctx, req.Player2ID)
	if err != nil {
		return err
	}
	if req.Player1ID == req.Player2ID {
		return invalid("%s cannot be friends with themselves.", player1)
	}

	err = a.store.InsertFriendship(ctx, types.Friendship{
		PlayerID: req.Player1ID,
		FriendID: req.Player2ID,
	})
	if err != nil {
		return duplicate(err, "%s is already friends with %s.", player1, player2)
	}
	a.logger.Debug("friendship added", "player1_id", req.Player1ID, "player2_id", req.Player2ID)
	a.printf("%s and %s are now friends.\n", player1, player2)
	return nil
}

// WinVictory records that a player earned a victory of a game.
func (a *App) WinVictory(ctx context.Context, req WinVictoryRequest) error {
	player, err := a.playerName(ctx, req.PlayerID)
	if err != nil {
		return err
	}
	if _, err := a.gameName(ctx, req.GameID); err != nil {
		return err
	}
	victory, err := a.victoryName(ctx, req.GameID, req.VictoryID)
	if err != nil {
		return err
	}

	err = a.store.InsertAchievement(ctx, types.Achievement{
		PlayerID:  req.PlayerID,
		GameID:    req.GameID,
		VictoryID: req.VictoryID,
	})
	if err != nil {
		return duplicate(err, "%s has already earned %s!", player, victory)
	}
	a.logger.Debug("achievement added", "player_id", req.PlayerID, "game_id", req.GameID, "victory_id", req.VictoryID)
	a.printf("Added '%s' to %s's victories.\n", victory, player)
	return nil
}
