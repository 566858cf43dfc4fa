package main

import (
	"os"

	"github.com/nmoreno/quizrush/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
