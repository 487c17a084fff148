// Command gamedb is a gamer information database with a console UI.
package main

import "github.com/mesh-intelligence/gamedb/internal/cli"

func main() {
	cli.Execute()
}
