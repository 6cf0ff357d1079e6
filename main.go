package main

import "github.com/virtualgrid/league-results-go/cmd"

func main() {
	cmd.Execute()
}
