package routes

import (
	"os"
	"restropos-backend/config"
	"restropos-backend/controllers"
	"restropos-backend/models"
	"restropos-backend/utils"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.POST("", controllers.CreateInventoryItem)
			inventory.GET("", controllers.GetInventoryItems)
			inventory.GET("/:id", controllers.GetInventoryItem)
			inventory.PUT("/:id", controllers.UpdateInventoryItem)
			inventory.POST("/:id/update-quantity", controllers.UpdateInventoryQuantity)
			inventory.DELETE("/:id", controllers.DeleteInventoryItem)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetOrders)
			orders.GET("/:id", controllers.GetOrder)
			orders.PUT("/:id/status", controllers.UpdateOrderStatus)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}

		// Cash close routes
		cashClose := api.Group("/cash-close")
		{
			cashClose.POST("", controllers.OpenCashClose)
			cashClose.GET("", controllers.GetCashCloses)
			cashClose.GET("/:id", controllers.GetCashClose)
			cashClose.PUT("/:id/close", controllers.CloseCashClose)
			cashClose.POST("/:id/expenses", controllers.AddCashCloseExpense)
			cashClose.PUT("/:id/verify",
				utils.RequireRole(models.RoleAdmin, models.RoleManager), controllers.VerifyCashClose)
			cashClose.PUT("/:id/restore",
				utils.RequireRole(models.RoleAdmin, models.RoleManager), controllers.RestoreCashClose)
		}

		// Analytics routes
		analytics := api.Group("/analytics")
		{
			analytics.GET("/dashboard", controllers.GetDashboard)
			analytics.GET("/sales", controllers.GetSalesAnalytics)
			analytics.GET("/inventory", controllers.GetInventoryAnalytics)
			analytics.GET("/orders", controllers.GetOrdersAnalytics)
			analytics.GET("/projections", controllers.GetProjections)
		}

		// Day end
		api.POST("/day/end",
			utils.RequireRole(models.RoleAdmin, models.RoleManager), controllers.EndDay)

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", utils.RequireRole(models.RoleAdmin), controllers.UpdateProfile)
			profile.PUT("/settings", utils.RequireRole(models.RoleAdmin), controllers.UpdateSettings)
			profile.GET("/menu-qr", controllers.GetMenuQR)
		}

		// Employee routes (admins and managers only)
		employees := api.Group("/employees", utils.RequireRole(models.RoleAdmin, models.RoleManager))
		{
			employees.GET("", controllers.GetEmployees)
			employees.POST("", controllers.AddEmployee)
			employees.PUT("/:id", controllers.UpdateEmployee)
			employees.DELETE("/:id", controllers.DeleteEmployee)
		}
	}

	return r
}
