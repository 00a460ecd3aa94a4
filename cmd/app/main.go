package main

import (
	"os"

	"github.com/am-saksham/rescue-api/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
