package gamedb

import (
	"context"
	"fmt"
)

func (a *App) playerName(ctx context.Context, id uint64) (string, error) {
	name, ok, err := a.store.PlayerName(ctx, id)
	if err != nil {
		return "", fmt.Errorf("looking up player %d: %w", id, err)
	}
	if !ok {
		return "", notFound("Player #%d is not in the database!", id)
	}
	return name, nil
}

func (a *App) gameName(ctx context.Context, id uint64) (string, error) {
	name, ok, err := a.store.GameName(ctx, id)
	if err != nil {
		return "", fmt.Errorf("looking up game %d: %w", id, err)
	}
	if !ok {
		return "", notFound("Game #%d is not in the database!", id)
	}
	return name, nil
}

func (a *App) victoryName(ctx context.Context, gameID, victoryID uint64) (string, error) {
	name, ok, err := a.store.VictoryName(ctx, gameID, victoryID)
	if err != nil {
		return "", fmt.Errorf("looking up victory %d/%d: %w", gameID, victoryID, err)
	}
	if !ok {
		return "", notFound("Victory #%d for game #%d is not in the database!", victoryID, gameID)
	}
	return name, nil
}

func (a *App) playerInitials(ctx context.Context, id uint64) (string, error) {
	initials, ok, err := a.store.PlayerInitials(ctx, id)
	if err != nil {
		return "", fmt.Errorf("looking up initials of player %d: %w", id, err)
	}
	if !ok {
		return "", notFound("Player #%d is not in the database!", id)
	}
	return initials, nil
}
