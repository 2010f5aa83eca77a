//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
	"github.com/invaderrssofficial-source/invaders.final/internal/rpc"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
	"github.com/invaderrssofficial-source/invaders.final/internal/transport"
)

const rpcPrefix = "/api/trpc/"

type Storage interface {
	ListOrders(ctx context.Context) []storage.Order
	CreateOrder(ctx context.Context, in storage.NewOrder) (*storage.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status storage.Status) error
	DeleteOrder(ctx context.Context, id string) error

	ListMerch(ctx context.Context) []storage.MerchItem
	CreateMerch(ctx context.Context, in storage.NewMerchItem) (*storage.MerchItem, error)
	UpdateMerch(ctx context.Context, id string, patch storage.MerchPatch) error
	DeleteMerch(ctx context.Context, id string) error

	ListHeroes(ctx context.Context) []storage.Hero
	CreateHero(ctx context.Context, in storage.NewHero) (*storage.Hero, error)
	UpdateHero(ctx context.Context, id string, patch storage.HeroPatch) error
	DeleteHero(ctx context.Context, id string) error

	GetBankInfo(ctx context.Context) storage.BankInfo
	UpdateBankInfo(ctx context.Context, info storage.BankInfo) (storage.BankInfo, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	cfg      *config.Config
	storage  Storage
	userRepo UserRepo
	audit    *AuditManager
	logger   *zap.Logger
	server   *http.Server
}

// New wires the procedure groups. audit may be nil, in which case mutations
// are not recorded.
func New(cfg *config.Config, storage Storage, userRepo UserRepo, audit *AuditManager, logger *zap.Logger) *Server {
	return &Server{
		cfg:      cfg,
		storage:  storage,
		userRepo: userRepo,
		audit:    audit,
		logger:   logger,
	}
}

// Router merges the orders, merch, heroes and settings groups.
func (s *Server) Router() *rpc.Router {
	router := rpc.NewRouter(
		rpc.WithAuthRequired(s.cfg.Auth.Required),
		rpc.WithInterceptors(metricsInterceptor),
	)
	if s.audit != nil {
		router.Use(s.auditInterceptor)
	}

	return router.
		Merge("orders", s.ordersGroup()).
		Merge("merch", s.merchGroup()).
		Merge("heroes", s.heroesGroup()).
		Merge("settings", s.settingsGroup())
}

// Handler returns the configured transport adapter around the RPC handler.
func (s *Server) Handler() (http.Handler, error) {
	factory := rpc.NewContextFactory(s.cfg.Server.Transport, authenticator{users: s.userRepo})
	api := rpc.NewHandler(s.Router(), factory, rpcPrefix, s.logger.Named("rpc"))
	return transport.New(s.cfg.Server, api, s.logger.Named("http"))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	s.server = &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      s.cfg.Server.MaxDuration + 5*time.Second,
	}

	if s.audit != nil {
		s.audit.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting",
			zap.String("addr", s.cfg.Server.Addr),
			zap.String("transport", s.cfg.Server.Transport),
			zap.Bool("auth_required", s.cfg.Auth.Required),
		)
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if s.audit != nil {
			auditCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			s.audit.Shutdown(auditCtx)
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		s.logger.Info("Shutdown requested", zap.Error(context.Cause(ctx)))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	var err error
	if s.server != nil {
		if err = s.server.Shutdown(ctx); err != nil {
			s.logger.Error("HTTP server shutdown failed", zap.Error(err))
		} else {
			s.logger.Info("HTTP server shutdown completed")
		}
	}

	if s.audit != nil {
		s.audit.Shutdown(ctx)
	}
	if err != nil {
		return err
	}
	s.logger.Info("Server shutdown completed successfully")

	return nil
}
