package main

import "github.com/volsim/volmesh/cmd"

func main() {
	cmd.Execute()
}
