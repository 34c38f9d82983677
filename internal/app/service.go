package app

import (
	"context"
	"fmt"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/auth"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/config"
	apphttp "github.com/Perfectmodels/perfect-model-hub-sub001/internal/http"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/infra/s3"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/promotion"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/repository/postgres"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/store"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer/providers"
)

// Service wires the data store, its change listener and the HTTP surface.
type Service struct {
	config   *config.Config
	db       *postgres.DB
	store    *store.Store
	listener *store.Listener
	server   *apphttp.Server

	cancel context.CancelFunc
}

func NewService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	aggregator := store.NewAggregator(db)
	dataStore := store.New(aggregator, db)
	listener := store.NewListener(dataStore, db, cfg.Store.ListenChannel, cfg.Store.RefreshDebounce)

	var provider providers.EmailProvider
	if cfg.Mail.APIKey != "" {
		provider = providers.NewResendProvider(cfg.Mail.APIKey)
	}
	emailService := mailer.NewEmailService(provider, cfg.Mail.From)

	uploader, err := s3.NewClient(&cfg.AWS)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	server := apphttp.NewServer(&apphttp.ServerDependencies{
		Config:     cfg,
		Store:      dataStore,
		Promoter:   promotion.New(db),
		Records:    db,
		Uploader:   uploader,
		Mailer:     emailService,
		JWTService: auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration),
	})

	return &Service{
		config:   cfg,
		db:       db,
		store:    dataStore,
		listener: listener,
		server:   server,
	}, nil
}

// Start performs the initial aggregation, runs the change listener and
// serves HTTP. It blocks until the server stops.
func (s *Service) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.store.Refresh(ctx)
	go s.listener.Run(ctx)

	return s.server.Start()
}

// Stop shuts the service down: HTTP first, then the listener, then the pool.
func (s *Service) Stop(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	if s.cancel != nil {
		s.cancel()
	}
	s.db.Close()
	return err
}
