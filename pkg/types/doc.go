// Package types defines the entities, report rows, session configuration,
// and standard errors shared by the gamedb store and command layers.
package types
