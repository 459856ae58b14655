package main

import "github.com/panyam/symexpr/cmd/symexpr/commands"

func main() {
	commands.Execute()
}
