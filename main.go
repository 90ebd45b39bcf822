package main

import (
	"log"

	"github.com/Armboy122/meetingroom/config"
	"github.com/Armboy122/meetingroom/database"
	"github.com/Armboy122/meetingroom/helper"
	"github.com/Armboy122/meetingroom/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	helper.InitRedis(config.ConfigOr("REDIS_ADDR", ""))

	helper.StartScheduleCacheWorker()
	defer helper.StopScheduleCacheWorker()
	helper.StartDailyMaintenance()
	defer helper.StopDailyMaintenance()

	router.SetupRoutes(app)

	port := config.ConfigOr("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
