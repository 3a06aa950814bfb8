package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/stpnv0/StayBooker/internal/app"
	"github.com/stpnv0/StayBooker/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using the process environment")
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
