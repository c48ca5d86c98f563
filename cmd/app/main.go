package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"mes/cmd"
	httpadapter "mes/internal/adapters/in/http"
	"mes/internal/adapters/out/postgres/bomrepo"
	"mes/internal/adapters/out/postgres/ledgerrepo"
	"mes/internal/adapters/out/postgres/orderrepo"
	"mes/internal/adapters/out/postgres/productrepo"
	"mes/internal/adapters/out/postgres/reservationrepo"
	"mes/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&bomrepo.BOMDTO{},
		&bomrepo.ComponentDTO{},
		&bomrepo.OperationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.WorkOrderDTO{},
		&reservationrepo.ReservationDTO{},
		&ledgerrepo.EntryDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateReleaseExpiredReservationsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       app.CreateCreateOrderCommandHandler(),
		ConfirmOrder:      app.CreateConfirmOrderCommandHandler(),
		PlanOrder:         app.CreatePlanOrderCommandHandler(),
		ReleaseOrder:      app.CreateReleaseOrderCommandHandler(),
		StartOrder:        app.CreateStartOrderCommandHandler(),
		PauseOrder:        app.CreatePauseOrderCommandHandler(),
		ResumeOrder:       app.CreateResumeOrderCommandHandler(),
		CompleteOrder:     app.CreateCompleteOrderCommandHandler(),
		CancelOrder:       app.CreateCancelOrderCommandHandler(),
		StartWorkOrder:    app.CreateStartWorkOrderCommandHandler(),
		PauseWorkOrder:    app.CreatePauseWorkOrderCommandHandler(),
		ResumeWorkOrder:   app.CreateResumeWorkOrderCommandHandler(),
		CompleteWorkOrder: app.CreateCompleteWorkOrderCommandHandler(),
		CancelWorkOrder:   app.CreateCancelWorkOrderCommandHandler(),
		AllocateMaterial:  app.CreateAllocateMaterialCommandHandler(),
		RecordStockEntry:  app.CreateRecordStockEntryCommandHandler(),

		GetStockBalance:       app.CreateGetStockBalanceQueryHandler(),
		GetLedgerHistory:      app.CreateGetLedgerHistoryQueryHandler(),
		GetActiveReservations: app.CreateGetActiveReservationsQueryHandler(),
		GetOpenOrders:         app.CreateGetOpenOrdersQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
