// Command beakerc is the front end and interpreter for the beaker
// language: it parses, elaborates, and evaluates source files, dispatched
// either by an explicit subcommand or by invocation name.
package main

import "github.com/beakerlang/beakerc/cmd/beakerc/cmd"

func main() {
	cmd.Execute()
}
