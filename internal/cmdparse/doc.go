// Package cmdparse implements the gamedb command language: typed argument
// tokens, a registry that declares commands, and the grammar built from it
// that matches input lines and dispatches them to handlers.
//
// A line is a case-sensitive command name followed by exactly the declared
// arguments, separated by whitespace:
//
//	AddVictory 1 10 "First Win" -5
//
// Registration happens once at startup:
//
//	reg := cmdparse.NewRegistry()
//	reg.MustRegister(cmdparse.Command{
//	    Name: "AddPlayer",
//	    Args: []cmdparse.Arg{
//	        {Name: "player_id", Kind: cmdparse.Unsigned},
//	        {Name: "player_name", Kind: cmdparse.Quoted},
//	    },
//	    Handler: addPlayer,
//	})
//	grammar, err := reg.Build()
//
// The resulting Grammar is immutable and each call to Parse is independent.
package cmdparse
