package main

import "github.com/nfrund/collectives/cmd/collectives-cli/cmd"

func main() {
	cmd.Execute()
}
