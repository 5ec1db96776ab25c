package main

import (
	"fmt"
	"log"
	"os"
	"restropos-backend/config"
	"restropos-backend/controllers"
	"restropos-backend/models"
	"restropos-backend/realtime"
	"restropos-backend/routes"
	"restropos-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
	config.ConnectRedis()

	config.DB.AutoMigrate(
		&models.Restaurant{},
		&models.User{},
		&models.InventoryItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.CashClose{},
		&models.CashExpense{},
		&models.DaySummary{},
		&models.StockAlertLog{},
	)
}

func main() {
	publisher := realtime.NewPublisher(config.Redis)
	controllers.Setup(config.DB, publisher)
	services.StartSchedulers(config.DB, publisher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
