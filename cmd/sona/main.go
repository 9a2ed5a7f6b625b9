package main

import "sona/cmd/sona/cmd"

func main() {
	cmd.Execute()
}
