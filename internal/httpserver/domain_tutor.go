package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"language-tutor/internal/agent"
	"language-tutor/internal/agent/tools"
	"language-tutor/internal/capability"
	"language-tutor/internal/middleware"
	"language-tutor/internal/router"
	tutorHTTP "language-tutor/internal/tutor/delivery/http"
	tutorRepo "language-tutor/internal/tutor/repository/postgre"
	tutorUC "language-tutor/internal/tutor/usecase"
)

// setupTutorDomain initializes the tutor domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group(...), h, mw)
func (srv HTTPServer) setupTutorDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := tutorRepo.New(srv.postgresDB, srv.l)

	// 2. Capabilities, router and tool executor
	registry := capability.NewRegistry()
	intentRouter := router.New(srv.llm, registry, srv.l)
	executor := agent.NewExecutor(tools.NewSaveWordPairTool(repo, srv.l), srv.l)

	// 3. UseCase
	uc := tutorUC.New(srv.l, srv.llm, registry, intentRouter, executor, repo, tutorUC.Config{
		HistoryWindow:      srv.cfg.Tutor.HistoryWindow,
		HistoryFormatLimit: srv.cfg.Tutor.HistoryFormatLimit,
		CacheSize:          srv.cfg.Tutor.CacheSize,
		CacheTTL:           time.Duration(srv.cfg.Tutor.CacheTTLMinutes) * time.Minute,
	})

	// 4. HTTP Handler + routes
	h := tutorHTTP.New(srv.l, uc)
	tutorHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Tutor domain registered")
	return nil
}
