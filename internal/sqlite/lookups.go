package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PlayerName returns the name of a player. ok is false if no player has id.
func (s *Store) PlayerName(ctx context.Context, id uint64) (name string, ok bool, err error) {
	return s.lookupName(ctx, "SELECT name FROM player WHERE id = ?", sqlID(id))
}

// GameName returns the name of a game. ok is false if no game has id.
func (s *Store) GameName(ctx context.Context, id uint64) (name string, ok bool, err error) {
	return s.lookupName(ctx, "SELECT name FROM game WHERE id = ?", sqlID(id))
}

// VictoryName returns the name of a victory within a game. ok is false if the
// game has no victory with that id.
func (s *Store) VictoryName(ctx context.Context, gameID, victoryID uint64) (name string, ok bool, err error) {
	return s.lookupName(ctx,
		"SELECT name FROM victory WHERE game_id = ? AND id = ?",
		sqlID(gameID), sqlID(victoryID),
	)
}

// PlayerInitials returns the initials() abbreviation of a player's name.
func (s *Store) PlayerInitials(ctx context.Context, id uint64) (initials string, ok bool, err error) {
	return s.lookupName(ctx, "SELECT initials(name) FROM player WHERE id = ?", sqlID(id))
}

func (s *Store) lookupName(ctx context.Context, query string, args ...any) (string, bool, error) {
	var name string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("looking up name: %w", err)
	}
	return name, true, nil
}
