package main

import (
	"os"

	"health-connect/configuration"
	"health-connect/cronjobs"
	"health-connect/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func Init() {
	configuration.ConfigDB()
	configuration.InitRedis()
}

func main() {
	// Perform application initialization
	Init()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	routes.PortalRoutes(router)

	reminderService := cronjobs.NewReminderService(configuration.DB)
	scheduler := reminderService.StartReminderCron()
	_ = scheduler

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	if err := router.Run(":" + port); err != nil {
		panic(err)
	}
}
