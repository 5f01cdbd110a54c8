package main

import (
	"fmt"

	"github.com/zeu5/env-wrappers/demos"
)

// main entry point to the demo commands
func main() {
	rootCommand := demos.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
