package gamedb

import (
	"context"
	"fmt"
)

// FriendsWhoPlay lists the player's friends who have the game in their
// library, highest score first.
func (a *App) FriendsWhoPlay(ctx context.Context, playerID, gameID uint64) error {
	player, err := a.playerName(ctx, playerID)
	if err != nil {
		return err
	}
	game, err := a.gameName(ctx, gameID)
	if err != nil {
		return err
	}

	friends, err := a.store.FriendsWhoPlay(ctx, playerID, gameID)
	if err != nil {
		return fmt.Errorf("friends who play: %w", err)
	}
	if len(friends) == 0 {
		a.printf("\n%s has no friends who play %s. :(\n", player, game)
		return nil
	}

	rows := make([][]string, 0, len(friends))
	for _, f := range friends {
		rows = append(rows, []string{f.Name, itoa(f.Score)})
	}
	a.printf("\n%s's friends who play %s:\n\n", player, game)
	a.table([]string{"Name", "Score"}, rows)
	return nil
}

// ComparePlayers prints both players' total score in a game, then every
// victory of the game with a Y/N column per player headed by their initials.
func (a *App) ComparePlayers(ctx context.Context, player1ID, player2ID, gameID uint64) error {
	if _, err := a.playerName(ctx, player1ID); err != nil {
		return err
	}
	if _, err := a.playerName(ctx, player2ID); err != nil {
		return err
	}
	game, err := a.gameName(ctx, gameID)
	if err != nil {
		return err
	}
	if player1ID == player2ID {
		return invalid("Cannot compare Player #%d with themselves.", player1ID)
	}

	totals, err := a.store.GameTotals(ctx, player1ID, player2ID, gameID)
	if err != nil {
		return fmt.Errorf("compare players totals: %w", err)
	}
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.Name, itoa(t.Score)})
	}
	a.printf("Total scores for %s:\n\n", game)
	a.table([]string{"Player", "Points"}, rows)

	victories, err := a.store.CompareVictories(ctx, player1ID, player2ID, gameID)
	if err != nil {
		return fmt.Errorf("compare players victories: %w", err)
	}
	if len(victories) == 0 {
		a.printf("\nNo victories.\n")
		return nil
	}

	initials1, err := a.playerInitials(ctx, player1ID)
	if err != nil {
		return err
	}
	initials2, err := a.playerInitials(ctx, player2ID)
	if err != nil {
		return err
	}

	rows = make([][]string, 0, len(victories))
	for _, v := range victories {
		rows = append(rows, []string{v.Name, itoa(v.Points), yesNo(v.FirstEarned), yesNo(v.SecondEarned)})
	}
	a.printf("\nVictories for %s:\n\n", game)
	a.table([]string{"Victory", "Points", initials1, initials2}, rows)
	return nil
}

// SummarizePlayer prints the player's friends with their overall scores, the
// games in the player's library, and the total of the listed game scores.
func (a *App) SummarizePlayer(ctx context.Context, playerID uint64) error {
	player, err := a.playerName(ctx, playerID)
	if err != nil {
		return err
	}

	friends, err := a.store.FriendScores(ctx, playerID)
	if err != nil {
		return fmt.Errorf("summarize player friends: %w", err)
	}
	if len(friends) == 0 {
		a.printf("%s has no friends. :(\n", player)
	} else {
		rows := make([][]string, 0, len(friends))
		for _, f := range friends {
			rows = append(rows, []string{f.Name, itoa(f.Score)})
		}
		a.printf("%s's friends:\n", player)
		a.table([]string{"Name", "Score"}, rows)
	}

	games, err := a.store.LibraryGames(ctx, playerID)
	if err != nil {
		return fmt.Errorf("summarize player games: %w", err)
	}
	var total int64
	if len(games) == 0 {
		a.printf("\n%s has no games in their library. :(\n", player)
	} else {
		rows := make([][]string, 0, len(games))
		for _, g := range games {
			total += g.Score
			rows = append(rows, []string{
				g.Name,
				ratio(g.EarnedVictories, g.TotalVictories),
				itoa(g.Score),
				g.IGN,
			})
		}
		a.printf("\n%s's games:\n", player)
		a.table([]string{"Name", "Victories", "Points", "IGN"}, rows)
	}

	a.printf("\n%s's total score: %d\n", player, total)
	return nil
}

// SummarizeGame prints the game's victories with how many library players
// earned each, then the players with the game in their library.
func (a *App) SummarizeGame(ctx context.Context, gameID uint64) error {
	game, err := a.gameName(ctx, gameID)
	if err != nil {
		return err
	}

	victories, err := a.store.GameVictories(ctx, gameID)
	if err != nil {
		return fmt.Errorf("summarize game victories: %w", err)
	}
	players, err := a.store.GamePlayers(ctx, gameID)
	if err != nil {
		return fmt.Errorf("summarize game players: %w", err)
	}

	if len(victories) == 0 {
		a.printf("%s has no Victories associated with it.\n", game)
	} else {
		rows := make([][]string, 0, len(victories))
		for _, v := range victories {
			rows = append(rows, []string{v.Name, itoa(v.Points), ratio(v.Earners, len(players))})
		}
		a.printf("Victories for %s:\n", game)
		a.table([]string{"Name", "Points", "Players"}, rows)
	}

	if len(players) == 0 {
		a.printf("\nNo players have %s in their library.\n", game)
		return nil
	}
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{p.Name, itoa(p.Score), ratio(p.EarnedVictories, len(victories))})
	}
	a.printf("\nPlayers with %s in their library:\n", game)
	a.table([]string{"Name", "Points", "Victories"}, rows)
	return nil
}

// SummarizeVictory prints the share of the game's library players who earned
// the victory, then everyone who earned it. A game nobody has in their
// library reports 0.00%.
func (a *App) SummarizeVictory(ctx context.Context, gameID, victoryID uint64) error {
	game, err := a.gameName(ctx, gameID)
	if err != nil {
		return err
	}
	victory, err := a.victoryName(ctx, gameID, victoryID)
	if err != nil {
		return err
	}

	libraryPlayers, err := a.store.LibraryCount(ctx, gameID)
	if err != nil {
		return fmt.Errorf("summarize victory library count: %w", err)
	}
	holders, err := a.store.VictoryHolders(ctx, gameID, victoryID)
	if err != nil {
		return fmt.Errorf("summarize victory holders: %w", err)
	}

	earned := 0
	for _, h := range holders {
		if h.InLibrary {
			earned++
		}
	}
	a.printf("%.2f%% of all %s players have earned %s:\n\n", percent(earned, libraryPlayers), game, victory)
	if libraryPlayers == 0 {
		a.printf("No players have %s in their library.\n\n", game)
	}

	if len(holders) == 0 {
		a.printf("No results.\n")
		return nil
	}
	rows := make([][]string, 0, len(holders))
	for _, h := range holders {
		rows = append(rows, []string{h.Name})
	}
	a.table([]string{"Player"}, rows)
	return nil
}

// VictoryRanking prints every player ranked by points summed over all games.
func (a *App) VictoryRanking(ctx context.Context) error {
	ranking, err := a.store.Ranking(ctx)
	if err != nil {
		return fmt.Errorf("victory ranking: %w", err)
	}
	if len(ranking) == 0 {
		a.printf("No results.\n")
		return nil
	}

	rows := make([][]string, 0, len(ranking))
	for _, r := range ranking {
		rows = append(rows, []string{r.Name, itoa(r.Score)})
	}
	a.printf("Global leaderboard:\n\n")
	a.table([]string{"Player", "Total Score"}, rows)
	return nil
}

// percent returns 100*n/total, or 0 when total is 0.
func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
