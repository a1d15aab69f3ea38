package main

import "league-sync/cmd"

func main() {
	cmd.Execute()
}
