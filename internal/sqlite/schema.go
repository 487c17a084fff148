package sqlite

// Schema DDL. Victory IDs are scoped to their game, so every reference to a
// victory carries the (game_id, victory_id) pair.
const (
	createPlayer = `CREATE TABLE IF NOT EXISTS player (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);`

	createGame = `CREATE TABLE IF NOT EXISTS game (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);`

	createVictory = `CREATE TABLE IF NOT EXISTS victory (
    game_id INTEGER NOT NULL,
    id INTEGER NOT NULL,
    name TEXT NOT NULL,
    points INTEGER NOT NULL CHECK (points BETWEEN -2147483648 AND 2147483647),
    PRIMARY KEY (game_id, id),
    FOREIGN KEY (game_id) REFERENCES game(id)
);`

	createPlayerGame = `CREATE TABLE IF NOT EXISTS player_game (
    player_id INTEGER NOT NULL,
    game_id INTEGER NOT NULL,
    ign TEXT NOT NULL,
    PRIMARY KEY (player_id, game_id),
    FOREIGN KEY (player_id) REFERENCES player(id),
    FOREIGN KEY (game_id) REFERENCES game(id)
);`

	createFriendship = `CREATE TABLE IF NOT EXISTS friendship (
    player_id INTEGER NOT NULL,
    friend_id INTEGER NOT NULL,
    PRIMARY KEY (player_id, friend_id),
    CHECK (player_id <> friend_id),
    FOREIGN KEY (player_id) REFERENCES player(id),
    FOREIGN KEY (friend_id) REFERENCES player(id)
);`

	createPlayerVictory = `CREATE TABLE IF NOT EXISTS player_victory (
    player_id INTEGER NOT NULL,
    game_id INTEGER NOT NULL,
    victory_id INTEGER NOT NULL,
    PRIMARY KEY (player_id, game_id, victory_id),
    FOREIGN KEY (player_id) REFERENCES player(id),
    FOREIGN KEY (game_id, victory_id) REFERENCES victory(game_id, id)
);`

	// per_game_totals_view has one row per library entry. Scores and counts
	// default to 0 when the player has no achievements in that game.
	createPerGameTotalsView = `CREATE VIEW IF NOT EXISTS per_game_totals_view AS
SELECT
    pg.player_id AS player_id,
    pg.game_id AS game_id,
    COUNT(pv.victory_id) AS n_earned_victories,
    COALESCE(SUM(v.points), 0) AS game_score
FROM player_game pg
    LEFT JOIN player_victory pv
      ON pv.player_id = pg.player_id AND pv.game_id = pg.game_id
    LEFT JOIN victory v
      ON v.game_id = pv.game_id AND v.id = pv.victory_id
GROUP BY pg.player_id, pg.game_id;`
)

// Index DDL for the report queries.
const (
	idxPlayerGameGame       = `CREATE INDEX IF NOT EXISTS idx_player_game_game ON player_game(game_id);`
	idxPlayerVictoryVictory = `CREATE INDEX IF NOT EXISTS idx_player_victory_victory ON player_victory(game_id, victory_id);`
	idxFriendshipFriend     = `CREATE INDEX IF NOT EXISTS idx_friendship_friend ON friendship(friend_id);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createPlayer,
	createGame,
	createVictory,
	createPlayerGame,
	createFriendship,
	createPlayerVictory,
	createPerGameTotalsView,
	idxPlayerGameGame,
	idxPlayerVictoryVictory,
	idxFriendshipFriend,
}
