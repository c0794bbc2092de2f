package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cr1ms0nh3ad/quadwire/lib/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <config file>", os.Args[0])
	}

	cfg, err := config.Parse(os.Args[1])
	if err != nil {
		log.Fatalf("config is invalid: %s", err)
	}

	fmt.Println("config is valid")
	fmt.Print(cfg.String())
}
