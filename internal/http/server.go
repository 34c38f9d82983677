package http

import (
	"context"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/auth"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/config"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/http/handler"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/http/middleware"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/metrics"
)

const requestBodyLimit = "10M"

type ServerDependencies struct {
	Config     *config.Config
	Store      handler.Gateway
	Promoter   handler.Promoter
	Records    handler.RecordWriter
	Uploader   handler.Uploader
	Mailer     handler.Mailer
	JWTService *auth.JWTService
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))
	e.Use(metrics.Middleware())

	snapshotHandler := handler.NewSnapshotHandler(deps.Store)
	modelHandler := handler.NewModelHandler(deps.Store)
	castingHandler := handler.NewCastingHandler(deps.Store, deps.Promoter, deps.Mailer)
	recordHandler := handler.NewRecordHandler(deps.Records)
	contactHandler := handler.NewContactHandler(deps.Records, deps.Mailer)
	mailHandler := handler.NewMailHandler(deps.Mailer)
	authHandler := handler.NewAuthHandler(deps.JWTService, deps.Config.Admin.Username, deps.Config.Admin.PasswordHash)

	e.GET("/healthz", snapshotHandler.Health)

	formLimiter := middleware.NewFormRateLimiter().Middleware()

	api := e.Group("/api")
	api.GET("/snapshot", snapshotHandler.Get)
	api.POST("/auth/login", authHandler.Login, formLimiter)
	api.POST("/casting-applications", castingHandler.Submit, formLimiter)
	api.POST("/contact", contactHandler.Contact, formLimiter)
	api.POST("/bookings", contactHandler.Booking, formLimiter)
	api.POST("/fashion-day-reservations", contactHandler.FashionDay, formLimiter)
	api.POST("/mail", mailHandler.Send, formLimiter)

	admin := api.Group("/admin", auth.RequireAdmin(deps.JWTService))
	admin.GET("/metrics", snapshotHandler.Metrics)
	admin.POST("/models", modelHandler.Save)
	admin.POST("/casting-applications", castingHandler.Save)
	admin.POST("/casting-applications/:id/promote", castingHandler.Promote)
	admin.PUT("/collections/:collection", recordHandler.Upsert)
	admin.DELETE("/collections/:collection/:id", recordHandler.Delete)

	uploadHandler := handler.NewUploadHandler(deps.Uploader, deps.Config.AWS.UploadBucket)
	admin.POST("/uploads", uploadHandler.Upload)

	return &Server{echo: e, deps: deps}
}

func (s *Server) Start() error {
	err := s.echo.Start(":" + s.deps.Config.Server.Port)
	if err != nil && err != stdhttp.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
