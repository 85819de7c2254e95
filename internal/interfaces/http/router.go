package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"titledesk/internal/application/batchprep/usecases"
	"titledesk/internal/infrastructure/auth"
	"titledesk/internal/infrastructure/carrier/fedex"
	"titledesk/internal/infrastructure/config"
	"titledesk/internal/infrastructure/email"
	"titledesk/internal/infrastructure/lock"
	"titledesk/internal/infrastructure/report"
	"titledesk/internal/infrastructure/repository"
	batchprephandlers "titledesk/internal/interfaces/http/handlers/batchprep"
	"titledesk/internal/interfaces/http/middleware"
	"titledesk/internal/interfaces/http/routes"
	"titledesk/internal/shared/db"
	"titledesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into one Gin engine.
type Router struct {
	engine          *gin.Engine
	cfg             *config.Config
	mappingHandler  *batchprephandlers.MappingHandler
	batchHandler    *batchprephandlers.BatchHandler
	roundHandler    *batchprephandlers.RoundHandler
	shippingHandler *batchprephandlers.ShippingHandler
	checkHandler    *batchprephandlers.CheckHandler
	reportHandler   *batchprephandlers.ReportHandler
	countyHandler   *batchprephandlers.CountyHandler
	authMiddleware  *middleware.AuthMiddleware
	logger          logger.Interface
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	mappingRepo := repository.NewMappingRepository(gormDB)
	countyRepo := repository.NewCountyRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	batchRepo := repository.NewBatchRepository(gormDB)
	groupRepo := repository.NewBatchGroupRepository(gormDB)
	historyRepo := repository.NewBatchHistoryRepository(gormDB)
	checkRepo := repository.NewInvoiceCheckRepository(gormDB)
	shippingRepo := repository.NewShippingDocumentRepository(gormDB)
	queryRepo := repository.NewBatchQueryRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)

	var locker lock.Locker
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		locker = lock.NewRedisLocker(client, "titledesk")
	} else {
		locker = lock.NewKeyedMutex()
	}

	renderer, err := report.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create report renderer: %w", err)
	}
	storage, err := report.NewFileStorage(cfg.Report.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create report storage: %w", err)
	}
	notifier := email.NewNotifier(&cfg.Email, cfg.Report.NotifyRecipient)

	labelClient := fedex.NewClient(&cfg.Carrier)
	trackClient := fedex.NewTrackClient(&cfg.Carrier)

	renderBudget := time.Duration(cfg.Report.RenderBudgetMS) * time.Millisecond

	setMappingUC := usecases.NewSetMappingUseCase(mappingRepo, countyRepo, ticketRepo, batchRepo, txManager, locker, log)
	deleteMappingUC := usecases.NewDeleteMappingUseCase(mappingRepo, ticketRepo, txManager, log)
	createBatchUC := usecases.NewCreateBatchUseCase(batchRepo, groupRepo, mappingRepo, ticketRepo, txManager, locker, log)
	computeRoundsUC := usecases.NewComputeRoundsUseCase(countyRepo, batchRepo, mappingRepo, ticketRepo, log)
	listReviewUC := usecases.NewListReviewUseCase(queryRepo, shippingRepo, checkRepo, log)
	listIncompleteUC := usecases.NewListIncompleteUseCase(queryRepo, log)
	listSentToDmvUC := usecases.NewListSentToDmvUseCase(queryRepo, log)
	deleteBatchUC := usecases.NewDeleteBatchUseCase(batchRepo, mappingRepo, deleteMappingUC, log)
	completeBatchUC := usecases.NewCompleteBatchUseCase(batchRepo, groupRepo, historyRepo, queryRepo, renderer, storage, notifier, txManager, renderBudget, log)
	markSentToDmvUC := usecases.NewMarkSentToDmvUseCase(mappingRepo, ticketRepo, log)
	generateLabelUC := usecases.NewGenerateLabelUseCase(batchRepo, countyRepo, shippingRepo, labelClient, txManager, log)
	trackShipmentUC := usecases.NewTrackShipmentUseCase(trackClient, log)
	uploadChecksUC := usecases.NewUploadChecksUseCase(checkRepo, mappingRepo, txManager, log)
	exportChecksUC := usecases.NewExportChecksUseCase(batchRepo, mappingRepo, checkRepo, countyRepo, log)
	downloadReportUC := usecases.NewDownloadReportUseCase(historyRepo, storage, log)
	listHistoryUC := usecases.NewListHistoryUseCase(historyRepo, log)
	listCountiesUC := usecases.NewListCountiesUseCase(countyRepo, log)
	listCountyRulesUC := usecases.NewListCountyRulesUseCase(countyRepo, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, 0)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:          engine,
		cfg:             cfg,
		mappingHandler:  batchprephandlers.NewMappingHandler(setMappingUC, deleteMappingUC),
		batchHandler:    batchprephandlers.NewBatchHandler(createBatchUC, listReviewUC, listIncompleteUC, listSentToDmvUC, deleteBatchUC, completeBatchUC, markSentToDmvUC),
		roundHandler:    batchprephandlers.NewRoundHandler(computeRoundsUC),
		shippingHandler: batchprephandlers.NewShippingHandler(generateLabelUC, trackShipmentUC),
		checkHandler:    batchprephandlers.NewCheckHandler(uploadChecksUC, exportChecksUC),
		reportHandler:   batchprephandlers.NewReportHandler(listHistoryUC, downloadReportUC),
		countyHandler:   batchprephandlers.NewCountyHandler(listCountiesUC, listCountyRulesUC),
		authMiddleware:  authMiddleware,
		logger:          log,
	}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupBatchPrepRoutes(r.engine, &routes.BatchPrepRouteConfig{
		MappingHandler:  r.mappingHandler,
		BatchHandler:    r.batchHandler,
		RoundHandler:    r.roundHandler,
		ShippingHandler: r.shippingHandler,
		CheckHandler:    r.checkHandler,
		ReportHandler:   r.reportHandler,
		CountyHandler:   r.countyHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
