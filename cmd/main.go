package main

import (
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/config"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/controllers"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/routes"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/services"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/utils"
)

func main() {
	config.InitLogger()
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	alerts := services.NewAlertService(config.DB)
	vehicles := services.NewVehicleService(config.DB)
	drivers := services.NewDriverService(config.DB)
	suppliers := services.NewSupplierService(config.DB)
	documents := services.NewDocumentService(config.DB)
	importer := services.NewImportService(vehicles)
	generator := services.NewAlertGenerator(alerts, vehicles, drivers, suppliers, hub, config.Log)

	r := routes.SetupRouter(routes.Controllers{
		Alerts:    controllers.NewAlertController(alerts, generator),
		Vehicles:  controllers.NewVehicleController(vehicles, importer),
		Drivers:   controllers.NewDriverController(drivers),
		Suppliers: controllers.NewSupplierController(suppliers),
		Documents: controllers.NewDocumentController(documents),
		Realtime:  controllers.NewRealtimeController(hub),
	})
	r.Run(":8080")
}
