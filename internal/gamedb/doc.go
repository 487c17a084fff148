// Package gamedb implements the GameDB console commands.
//
// App binds each command to the cmdparse registry, checks that referenced
// players, games and victories exist, performs the write or report against a
// Store, and prints the result. Failures the user can fix (missing entities,
// duplicates, invalid requests) are returned as *UserError; anything else is
// a store failure and should end the session.
package gamedb
