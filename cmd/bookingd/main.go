package main

import (
	"log"

	"github.com/mcsclean/bookingd/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ bookingd failed to start: %v", err)
	}
}
