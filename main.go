package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/db"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/redis"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/jobs"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/migrations"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/routes"
)

var (
	startServer = func(r *gin.Engine, addr string) error { return r.Run(addr) }
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	if !isTest {
		if err := db.Connect(); err != nil {
			log.Fatal("Unable to connect to the database: ", err)
		}
		redis.Connect()

		if os.Getenv("RUN_MIGRATIONS") == "true" {
			migrations.BackfillAppointmentStatus()
			migrations.ClampStoredFeePercentages()
		}

		jobs.SeedSettings()
		jobs.StartDailyScheduler()
	}

	r := gin.Default()
	if !isTest {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}
	routes.Routes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := startServer(r, ":"+port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
