package main

import (
	"checkinhq/config"
	"checkinhq/helper"
	"log"
	"os"
)

var actions = map[string]func(*config.Config) error{
	"up":      helper.Up,
	"down":    helper.Down,
	"drop":    helper.Drop,
	"step-up": helper.StepUp,
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Migration direction (up/down/drop/step-up) is required")
	}

	run, ok := actions[os.Args[1]]
	if !ok {
		log.Fatal("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
	}

	if err := run(config.Get()); err != nil {
		log.Fatal(err)
	}
}
