package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/gamedb/pkg/types"
)

// FriendsWhoPlay returns the friends of playerID that have gameID in their
// library, with their score in that game, highest score first.
func (s *Store) FriendsWhoPlay(ctx context.Context, playerID, gameID uint64) ([]types.ScoreRow, error) {
	return s.scoreRows(ctx, "friends who play",
		`SELECT p.name, pgtv.game_score
  FROM friendship f
    JOIN player p ON p.id = f.friend_id
    JOIN per_game_totals_view pgtv
      ON pgtv.player_id = f.friend_id AND pgtv.game_id = ?
  WHERE f.player_id = ?
  ORDER BY pgtv.game_score DESC, p.name ASC`,
		sqlID(gameID), sqlID(playerID),
	)
}

// GameTotals returns each player's total score in a game, first player first.
// Players without achievements in the game score 0.
func (s *Store) GameTotals(ctx context.Context, firstID, secondID, gameID uint64) ([]types.ScoreRow, error) {
	return s.scoreRows(ctx, "game totals",
		`SELECT p.name, COALESCE(SUM(v.points), 0)
  FROM player p
    LEFT JOIN player_victory pv
      ON pv.player_id = p.id AND pv.game_id = ?
    LEFT JOIN victory v
      ON v.game_id = pv.game_id AND v.id = pv.victory_id
  WHERE p.id IN (?, ?)
  GROUP BY p.id, p.name
  ORDER BY CASE WHEN p.id = ? THEN 0 ELSE 1 END`,
		sqlID(gameID), sqlID(firstID), sqlID(secondID), sqlID(firstID),
	)
}

// CompareVictories lists every victory of a game with whether each of the two
// players earned it, ordered by name ascending then points descending.
func (s *Store) CompareVictories(ctx context.Context, firstID, secondID, gameID uint64) ([]types.VictoryComparison, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT
    v.name,
    v.points,
    EXISTS (SELECT 1 FROM player_victory pv
             WHERE pv.player_id = ? AND pv.game_id = v.game_id AND pv.victory_id = v.id),
    EXISTS (SELECT 1 FROM player_victory pv
             WHERE pv.player_id = ? AND pv.game_id = v.game_id AND pv.victory_id = v.id)
  FROM victory v
  WHERE v.game_id = ?
  ORDER BY v.name ASC, v.points DESC`,
		sqlID(firstID), sqlID(secondID), sqlID(gameID),
	)
	if err != nil {
		return nil, fmt.Errorf("querying victory comparison: %w", err)
	}
	defer rows.Close()

	var out []types.VictoryComparison
	for rows.Next() {
		var c types.VictoryComparison
		if err := rows.Scan(&c.Name, &c.Points, &c.FirstEarned, &c.SecondEarned); err != nil {
			return nil, fmt.Errorf("scanning victory comparison: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// FriendScores returns the friends of playerID with their score summed over
// all games, highest first.
func (s *Store) FriendScores(ctx context.Context, playerID uint64) ([]types.ScoreRow, error) {
	return s.scoreRows(ctx, "friend scores",
		`SELECT p.name, COALESCE(SUM(v.points), 0) AS score
  FROM friendship f
    JOIN player p ON p.id = f.friend_id
    LEFT JOIN player_victory pv ON pv.player_id = p.id
    LEFT JOIN victory v
      ON v.game_id = pv.game_id AND v.id = pv.victory_id
  WHERE f.player_id = ?
  GROUP BY p.id, p.name
  ORDER BY score DESC, p.name ASC`,
		sqlID(playerID),
	)
}

// LibraryGames returns the games in a player's library with victory counts,
// score and in-game name, highest score first.
func (s *Store) LibraryGames(ctx context.Context, playerID uint64) ([]types.LibraryGame, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT
    g.name,
    pgtv.n_earned_victories,
    COALESCE(game_sum.vcount, 0),
    pgtv.game_score,
    pg.ign
  FROM per_game_totals_view pgtv
    JOIN game g ON g.id = pgtv.game_id
    JOIN player_game pg
      ON pg.player_id = pgtv.player_id AND pg.game_id = pgtv.game_id
    LEFT JOIN (SELECT game_id, COUNT(*) AS vcount FROM victory GROUP BY game_id)
      AS game_sum ON game_sum.game_id = g.id
  WHERE pgtv.player_id = ?
  ORDER BY pgtv.game_score DESC, g.name ASC`,
		sqlID(playerID),
	)
	if err != nil {
		return nil, fmt.Errorf("querying library games: %w", err)
	}
	defer rows.Close()

	var out []types.LibraryGame
	for rows.Next() {
		var g types.LibraryGame
		if err := rows.Scan(&g.Name, &g.EarnedVictories, &g.TotalVictories, &g.Score, &g.IGN); err != nil {
			return nil, fmt.Errorf("scanning library game: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// GameVictories returns the victories of a game with the number of players
// who earned each and have the game in their library, ordered by points
// descending then name ascending.
func (s *Store) GameVictories(ctx context.Context, gameID uint64) ([]types.VictoryStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT v.name, v.points, COUNT(pg.player_id)
  FROM victory v
    LEFT JOIN player_victory pv
      ON pv.game_id = v.game_id AND pv.victory_id = v.id
    LEFT JOIN player_game pg
      ON pg.player_id = pv.player_id AND pg.game_id = v.game_id
  WHERE v.game_id = ?
  GROUP BY v.game_id, v.id
  ORDER BY v.points DESC, v.name ASC`,
		sqlID(gameID),
	)
	if err != nil {
		return nil, fmt.Errorf("querying game victories: %w", err)
	}
	defer rows.Close()

	var out []types.VictoryStat
	for rows.Next() {
		var v types.VictoryStat
		if err := rows.Scan(&v.Name, &v.Points, &v.Earners); err != nil {
			return nil, fmt.Errorf("scanning game victory: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// GamePlayers returns the players with a game in their library, with their
// score and earned victory count, highest score first then name ascending.
func (s *Store) GamePlayers(ctx context.Context, gameID uint64) ([]types.PlayerStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.name, pgtv.game_score, pgtv.n_earned_victories
  FROM per_game_totals_view pgtv
    JOIN player p ON p.id = pgtv.player_id
  WHERE pgtv.game_id = ?
  ORDER BY pgtv.game_score DESC, p.name ASC`,
		sqlID(gameID),
	)
	if err != nil {
		return nil, fmt.Errorf("querying game players: %w", err)
	}
	defer rows.Close()

	var out []types.PlayerStat
	for rows.Next() {
		var p types.PlayerStat
		if err := rows.Scan(&p.Name, &p.Score, &p.EarnedVictories); err != nil {
			return nil, fmt.Errorf("scanning game player: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// LibraryCount returns how many players have a game in their library.
func (s *Store) LibraryCount(ctx context.Context, gameID uint64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM player_game WHERE game_id = ?", sqlID(gameID),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting library entries: %w", err)
	}
	return n, nil
}

// VictoryHolders returns the players who earned a victory, by name, noting
// whether each has the game in their library.
func (s *Store) VictoryHolders(ctx context.Context, gameID, victoryID uint64) ([]types.VictoryHolder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.name, pg.player_id IS NOT NULL
  FROM player_victory pv
    JOIN player p ON p.id = pv.player_id
    LEFT JOIN player_game pg
      ON pg.player_id = pv.player_id AND pg.game_id = pv.game_id
  WHERE pv.game_id = ? AND pv.victory_id = ?
  ORDER BY p.name ASC`,
		sqlID(gameID), sqlID(victoryID),
	)
	if err != nil {
		return nil, fmt.Errorf("querying victory holders: %w", err)
	}
	defer rows.Close()

	var out []types.VictoryHolder
	for rows.Next() {
		var h types.VictoryHolder
		if err := rows.Scan(&h.Name, &h.InLibrary); err != nil {
			return nil, fmt.Errorf("scanning victory holder: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Ranking returns every player with their score summed over all games,
// highest first. Players without achievements score 0.
func (s *Store) Ranking(ctx context.Context) ([]types.ScoreRow, error) {
	return s.scoreRows(ctx, "ranking",
		`SELECT p.name, COALESCE(SUM(v.points), 0) AS total
  FROM player p
    LEFT JOIN player_victory pv ON pv.player_id = p.id
    LEFT JOIN victory v
      ON v.game_id = pv.game_id AND v.id = pv.victory_id
  GROUP BY p.id, p.name
  ORDER BY total DESC, p.name ASC`,
	)
}

func (s *Store) scoreRows(ctx context.Context, what, query string, args ...any) ([]types.ScoreRow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", what, err)
	}
	defer rows.Close()
	return scanScoreRows(rows, what)
}

func scanScoreRows(rows *sql.Rows, what string) ([]types.ScoreRow, error) {
	var out []types.ScoreRow
	for rows.Next() {
		var r types.ScoreRow
		if err := rows.Scan(&r.Name, &r.Score); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", what, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", what, err)
	}
	return out, nil
}
