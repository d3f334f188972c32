package main

import "github.com/timeseries-at-ytg/saxvsm/cmd/saxvsm/commands"

func main() {
	commands.Execute()
}
