package main

import "github.com/philipparndt/mapwalk/cmd"

func main() {
	cmd.Execute()
}
