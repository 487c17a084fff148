package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/gamedb/pkg/types"
)

// InsertPlayer adds a player. It returns an error wrapping types.ErrDuplicate
// if the id is taken.
func (s *Store) InsertPlayer(ctx context.Context, p types.Player) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO player (id, name) VALUES (?, ?)",
			sqlID(p.ID), p.Name,
		)
		if err != nil {
			return fmt.Errorf("inserting player %d: %w", p.ID, err)
		}
		return nil
	})
}

// InsertGame adds a game.
func (s *Store) InsertGame(ctx context.Context, g types.Game) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO game (id, name) VALUES (?, ?)",
			sqlID(g.ID), g.Name,
		)
		if err != nil {
			return fmt.Errorf("inserting game %d: %w", g.ID, err)
		}
		return nil
	})
}

// InsertVictory adds a victory to an existing game.
func (s *Store) InsertVictory(ctx context.Context, v types.Victory) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO victory (game_id, id, name, points) VALUES (?, ?, ?, ?)",
			sqlID(v.GameID), sqlID(v.ID), v.Name, v.Points,
		)
		if err != nil {
			return fmt.Errorf("inserting victory %d/%d: %w", v.GameID, v.ID, err)
		}
		return nil
	})
}

// InsertLibraryEntry records that a player plays a game.
func (s *Store) InsertLibraryEntry(ctx context.Context, e types.LibraryEntry) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO player_game (player_id, game_id, ign) VALUES (?, ?, ?)",
			sqlID(e.PlayerID), sqlID(e.GameID), e.IGN,
		)
		if err != nil {
			return fmt.Errorf("inserting library entry %d/%d: %w", e.PlayerID, e.GameID, err)
		}
		return nil
	})
}

// InsertFriendship stores the friendship in both directions within one
// transaction. If either direction already exists nothing is written.
func (s *Store) InsertFriendship(ctx context.Context, f types.Friendship) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		pairs := [][2]uint64{{f.PlayerID, f.FriendID}, {f.FriendID, f.PlayerID}}
		for _, pair := range pairs {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO friendship (player_id, friend_id) VALUES (?, ?)",
				sqlID(pair[0]), sqlID(pair[1]),
			)
			if err != nil {
				return fmt.Errorf("inserting friendship %d/%d: %w", pair[0], pair[1], err)
			}
		}
		return nil
	})
}

// InsertAchievement records that a player earned a victory.
func (s *Store) InsertAchievement(ctx context.Context, a types.Achievement) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO player_victory (player_id, game_id, victory_id) VALUES (?, ?, ?)",
			sqlID(a.PlayerID), sqlID(a.GameID), sqlID(a.VictoryID),
		)
		if err != nil {
			return fmt.Errorf("inserting achievement %d/%d/%d: %w", a.PlayerID, a.GameID, a.VictoryID, err)
		}
		return nil
	})
}
