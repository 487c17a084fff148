package gamedb

import (
	"context"

	"github.com/mesh-intelligence/gamedb/internal/cmdparse"
)

// Argument names shared by several commands.
const (
	argPlayerID  = "player_id"
	argPlayer1ID = "player1_id"
	argPlayer2ID = "player2_id"
	argGameID    = "game_id"
	argVictoryID = "victory_id"
)

var (
	playerIDArg  = cmdparse.Arg{Name: argPlayerID, Kind: cmdparse.Unsigned, Label: "Player ID"}
	player1IDArg = cmdparse.Arg{Name: argPlayer1ID, Kind: cmdparse.Unsigned, Label: "Player ID1"}
	player2IDArg = cmdparse.Arg{Name: argPlayer2ID, Kind: cmdparse.Unsigned, Label: "Player ID2"}
	gameIDArg    = cmdparse.Arg{Name: argGameID, Kind: cmdparse.Unsigned, Label: "Game ID"}
	victoryIDArg = cmdparse.Arg{Name: argVictoryID, Kind: cmdparse.Unsigned, Label: "Victory ID"}
)

// Register adds every GameDB command to reg.
func (a *App) Register(reg *cmdparse.Registry) error {
	for _, cmd := range a.commands() {
		if err := reg.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) commands() []cmdparse.Command {
	return []cmdparse.Command{
		{
			Name:    "AddPlayer",
			Summary: "Add a player to the database.",
			Args: []cmdparse.Arg{
				playerIDArg,
				{Name: "player_name", Kind: cmdparse.Quoted, Label: "Player Name"},
			},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.AddPlayer(ctx, AddPlayerRequest{
					PlayerID: args.Uint(argPlayerID),
					Name:     args.Text("player_name"),
				})
			},
		},
		{
			Name:    "AddGame",
			Summary: "Add a game to the database.",
			Args: []cmdparse.Arg{
				gameIDArg,
				{Name: "game_name", Kind: cmdparse.Quoted, Label: "Game Name"},
			},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.AddGame(ctx, AddGameRequest{
					GameID: args.Uint(argGameID),
					Name:   args.Text("game_name"),
				})
			},
		},
		{
			Name:    "AddVictory",
			Summary: "Add a victory to a game.",
			Args: []cmdparse.Arg{
				gameIDArg,
				victoryIDArg,
				{Name: "victory_name", Kind: cmdparse.Quoted, Label: "Victory Name"},
				{Name: "points", Kind: cmdparse.Signed, Label: "Victory Points"},
			},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.AddVictory(ctx, AddVictoryRequest{
					GameID:    args.Uint(argGameID),
					VictoryID: args.Uint(argVictoryID),
					Name:      args.Text("victory_name"),
					Points:    args.Int("points"),
				})
			},
		},
		{
			Name:    "Plays",
			Summary: "Add a game to a player's library under an in-game name.",
			Args: []cmdparse.Arg{
				playerIDArg,
				gameIDArg,
				{Name: "player_ign", Kind: cmdparse.Quoted, Label: "Player IGN"},
			},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.Plays(ctx, PlaysRequest{
					PlayerID: args.Uint(argPlayerID),
					GameID:   args.Uint(argGameID),
					IGN:      args.Text("player_ign"),
				})
			},
		},
		{
			Name:    "AddFriends",
			Summary: "Make two players friends. Friendship is mutual.",
			Args:    []cmdparse.Arg{player1IDArg, player2IDArg},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.AddFriends(ctx, AddFriendsRequest{
					Player1ID: args.Uint(argPlayer1ID),
					Player2ID: args.Uint(argPlayer2ID),
				})
			},
		},
		{
			Name:    "WinVictory",
			Summary: "Record that a player earned a victory. Each victory is earned once.",
			Args:    []cmdparse.Arg{playerIDArg, gameIDArg, victoryIDArg},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.WinVictory(ctx, WinVictoryRequest{
					PlayerID:  args.Uint(argPlayerID),
					GameID:    args.Uint(argGameID),
					VictoryID: args.Uint(argVictoryID),
				})
			},
		},
		{
			Name:    "FriendsWhoPlay",
			Summary: "List a player's friends who play a game.",
			Args:    []cmdparse.Arg{playerIDArg, gameIDArg},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.FriendsWhoPlay(ctx, args.Uint(argPlayerID), args.Uint(argGameID))
			},
		},
		{
			Name:    "ComparePlayers",
			Summary: "Compare two players' victory records for a game.",
			Args:    []cmdparse.Arg{player1IDArg, player2IDArg, gameIDArg},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.ComparePlayers(ctx, args.Uint(argPlayer1ID), args.Uint(argPlayer2ID), args.Uint(argGameID))
			},
		},
		{
			Name:    "SummarizePlayer",
			Summary: "Print a player's friends, games and point totals.",
			Args:    []cmdparse.Arg{playerIDArg},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.SummarizePlayer(ctx, args.Uint(argPlayerID))
			},
		},
		{
			Name:    "SummarizeGame",
			Summary: "Print a game's victories and players.",
			Args:    []cmdparse.Arg{gameIDArg},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.SummarizeGame(ctx, args.Uint(argGameID))
			},
		},
		{
			Name:    "SummarizeVictory",
			Summary: "Print who earned a victory.",
			Args:    []cmdparse.Arg{gameIDArg, victoryIDArg},
			Handler: func(ctx context.Context, args cmdparse.Args) error {
				return a.SummarizeVictory(ctx, args.Uint(argGameID), args.Uint(argVictoryID))
			},
		},
		{
			Name:    "VictoryRanking",
			Summary: "Rank all players by total points.",
			Handler: func(ctx context.Context, _ cmdparse.Args) error {
				return a.VictoryRanking(ctx)
			},
		},
	}
}
