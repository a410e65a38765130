package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"Sage/CronJobs"
	"Sage/FiberConfig"
	"Sage/Models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	Models.Connect()

	windowDays := 7
	if env := os.Getenv("REMINDER_WINDOW_DAYS"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n >= 0 {
			windowDays = n
		}
	}

	refresher := CronJobs.NewStatusRefresher(Models.DB, windowDays, true)
	if err := refresher.Start(); err != nil {
		log.Printf("Failed to start status refresher: %v", err)
	}
	defer refresher.Stop()

	FiberConfig.FiberConfig(Models.DB)
}
