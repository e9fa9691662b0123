package main

import (
	"log"

	"github.com/placemate/placemate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
