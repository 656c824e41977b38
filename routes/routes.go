package routes

import (
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/controllers"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Alerts    *controllers.AlertController
	Vehicles  *controllers.VehicleController
	Drivers   *controllers.DriverController
	Suppliers *controllers.SupplierController
	Documents *controllers.DocumentController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		alerts := api.Group("/alerts")
		{
			alerts.GET("", ctrl.Alerts.List)
			alerts.GET("/stats", ctrl.Alerts.Stats)
			alerts.GET("/upcoming", ctrl.Alerts.Upcoming)
			alerts.POST("", ctrl.Alerts.Create)
			alerts.POST("/generate", ctrl.Alerts.Generate)
			alerts.PUT("/:id/resolve", ctrl.Alerts.Resolve)
			alerts.PUT("/:id/postpone", ctrl.Alerts.Postpone)
		}

		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", ctrl.Vehicles.List)
			vehicles.GET("/:id", ctrl.Vehicles.Get)
			vehicles.POST("", ctrl.Vehicles.Create)
			vehicles.POST("/import", ctrl.Vehicles.Import)
			vehicles.PUT("/:id", ctrl.Vehicles.Update)
			vehicles.DELETE("/:id", ctrl.Vehicles.Delete)
		}

		drivers := api.Group("/drivers")
		{
			drivers.GET("", ctrl.Drivers.List)
			drivers.GET("/:id", ctrl.Drivers.Get)
			drivers.POST("", ctrl.Drivers.Create)
			drivers.PUT("/:id", ctrl.Drivers.Update)
			drivers.DELETE("/:id", ctrl.Drivers.Delete)
		}

		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", ctrl.Suppliers.List)
			suppliers.GET("/:id", ctrl.Suppliers.Get)
			suppliers.POST("", ctrl.Suppliers.Create)
			suppliers.PUT("/:id", ctrl.Suppliers.Update)
			suppliers.DELETE("/:id", ctrl.Suppliers.Delete)
		}

		documents := api.Group("/documents")
		{
			documents.GET("", ctrl.Documents.ListBySubject)
			documents.POST("", ctrl.Documents.Upload)
		}

		api.GET("/ws/alerts", ctrl.Realtime.AlertsWS)
	}

	return r
}
