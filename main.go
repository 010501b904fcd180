package main

import (
	"context"
	"os"

	"estatehub/service"
)

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain runs the command line and exits with its status.
func RealMain() {
	root := service.NewRootCommand()
	root.SetArgs(os.Args[1:])
	if err := root.ExecuteContext(context.Background()); err != nil {
		exit(1)
		return
	}
	exit(0)
}
