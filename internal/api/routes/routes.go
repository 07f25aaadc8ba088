package routes

import (
	"albion-backend/internal/api/handlers"
	"albion-backend/internal/api/middleware"
	"albion-backend/internal/config"
	"albion-backend/internal/repository"
	"albion-backend/internal/schema"
	"albion-backend/internal/service"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Operator())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	frameRepo := repository.NewMachineFrameRepository(db)
	machineRepo := repository.NewMachineRepository(db)
	processRepo := repository.NewProcessRepository(db)
	colourRepo := repository.NewColourRepository(db)
	sizeRepo := repository.NewSizeRepository(db)
	sizeRangeRepo := repository.NewSizeRangeRepository(db)
	styleRepo := repository.NewStyleRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	importJobRepo := repository.NewImportJobRepository(db)

	// Initialize services
	calendarService := service.NewCalendarService(calendarRepo, shiftRepo, validator)
	planningService := service.NewPlanningService(allocationRepo, machineRepo, orderRepo, styleRepo, validator)
	reportService := service.NewReportService(allocationRepo, machineRepo, orderRepo, styleRepo, clientRepo, trackingRepo, calendarService)
	orderService := service.NewOrderService(orderRepo, clientRepo, styleRepo, allocationRepo, trackingRepo, validator)
	mastersService := service.NewMastersService(clientRepo, frameRepo, machineRepo, processRepo, colourRepo, sizeRepo, sizeRangeRepo, styleRepo, shiftRepo, validator)
	importService := service.NewImportService(db, importJobRepo)

	// Load the embedded entity field registry
	registry, err := schema.Load()
	if err != nil {
		log.Fatalf("Failed to load field registry: %v", err)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	capacityHandler := handlers.NewCapacityHandler(calendarService, planningService)
	reportHandler := handlers.NewReportHandler(reportService)
	orderHandler := handlers.NewOrderHandler(orderService, planningService)
	mastersHandler := handlers.NewMastersHandler(mastersService)
	importHandler := handlers.NewImportHandler(importService, cfg)
	metaHandler := handlers.NewMetaHandler(registry)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Shift calendar and machine allocation routes
		capacity := v1.Group("/capacity")
		{
			capacity.GET("/shift-allocations", capacityHandler.GetShiftAllocations)
			capacity.POST("/shift-allocations", capacityHandler.CreateShiftAllocation)
			capacity.PUT("/date-shift", capacityHandler.UpdateDateShift)
			capacity.POST("/alterations", capacityHandler.AddAlteration)
			capacity.PUT("/alterations/:id", capacityHandler.UpdateAlteration)
			capacity.DELETE("/alterations/:id", capacityHandler.DeleteAlteration)
			capacity.GET("/allocations", capacityHandler.GetAllAllocations)
			capacity.GET("/allocations/existing", capacityHandler.GetExistingAllocations)
			capacity.POST("/allocations", capacityHandler.SaveAllocations)
			capacity.DELETE("/allocations/:id", capacityHandler.DeleteAllocation)
		}

		// Reporting routes
		reports := v1.Group("/reports")
		{
			reports.GET("/production", reportHandler.GetProductionReport)
			reports.GET("/availability", reportHandler.GetMachineAvailability)
			reports.GET("/tracking", reportHandler.GetOrderTracking)
			reports.GET("/dashboard", reportHandler.GetDashboardStats)
		}

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.GET("/:id/data", orderHandler.GetOrderData)
			orders.GET("/:id/completion", orderHandler.GetOrderCompletion)
			orders.POST("/:id/tracking", orderHandler.RecordTracking)
			orders.POST("/:id/submit", orderHandler.SubmitOrder)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
			orders.POST("/:id/close", orderHandler.CloseOrder)
			orders.POST("/:id/reopen", orderHandler.ReopenOrder)
		}

		// Master data routes
		machines := v1.Group("/machines")
		{
			machines.GET("", mastersHandler.GetMachines)
			machines.POST("", mastersHandler.CreateMachine)
			machines.GET("/:id", mastersHandler.GetMachine)
		}

		processes := v1.Group("/processes")
		{
			processes.GET("", mastersHandler.GetProcesses)
			processes.POST("", mastersHandler.CreateProcess)
		}

		clients := v1.Group("/clients")
		{
			clients.GET("", mastersHandler.GetClients)
			clients.POST("", mastersHandler.CreateClient)
		}

		colours := v1.Group("/colours")
		{
			colours.GET("", mastersHandler.GetColours)
			colours.POST("", mastersHandler.CreateColour)
		}

		sizes := v1.Group("/sizes")
		{
			sizes.GET("", mastersHandler.GetSizes)
			sizes.POST("", mastersHandler.CreateSize)
		}

		sizeRanges := v1.Group("/size-ranges")
		{
			sizeRanges.GET("", mastersHandler.GetSizeRanges)
			sizeRanges.POST("", mastersHandler.CreateSizeRange)
		}

		styles := v1.Group("/styles")
		{
			styles.GET("", mastersHandler.GetStyles)
			styles.POST("", mastersHandler.CreateStyle)
			styles.GET("/:code", mastersHandler.GetStyleDetails)
		}

		shifts := v1.Group("/shifts")
		{
			shifts.GET("", mastersHandler.GetShifts)
			shifts.POST("", mastersHandler.CreateShift)
		}

		// Spreadsheet import routes
		imports := v1.Group("/imports")
		{
			imports.POST("/orders", importHandler.ImportOrders)
			imports.GET("/jobs/:id", importHandler.GetImportJob)
		}

		// Entity field metadata routes
		meta := v1.Group("/meta")
		{
			meta.GET("", metaHandler.GetEntities)
			meta.GET("/:entity", metaHandler.GetEntityFields)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
