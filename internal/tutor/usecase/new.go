package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"language-tutor/internal/capability"
	"language-tutor/internal/model"
	"language-tutor/internal/router"
	"language-tutor/internal/tutor/repository"
	"language-tutor/pkg/gemini"
	pkgLog "language-tutor/pkg/log"
)

// ToolExecutor runs specialist-requested tool calls under the trusted
// session identity.
type ToolExecutor interface {
	Execute(ctx context.Context, sc model.Scope, name string, args map[string]interface{}) (string, error)
	FunctionDeclarations() []gemini.FunctionDeclaration
}

// Config tunes the conversation pipeline.
type Config struct {
	// HistoryWindow is how many stored messages are loaded per turn.
	HistoryWindow int
	// HistoryFormatLimit is how many of those are rendered into model context.
	HistoryFormatLimit int
	// CacheSize / CacheTTL bound the in-process pronunciation cache in
	// front of the store-backed one.
	CacheSize int
	CacheTTL  time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      *gemini.Client
	registry *capability.Registry
	router   router.Router
	executor ToolExecutor
	repo     repository.Repository
	cfg      Config

	pronunciationCache *expirable.LRU[string, model.PronunciationAnalysis]
}

// New creates a new tutor UseCase instance.
func New(
	l pkgLog.Logger,
	llm *gemini.Client,
	registry *capability.Registry,
	rt router.Router,
	executor ToolExecutor,
	repo repository.Repository,
	cfg Config,
) *implUseCase {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = defaultHistoryWindow
	}
	if cfg.HistoryFormatLimit <= 0 || cfg.HistoryFormatLimit > cfg.HistoryWindow {
		cfg.HistoryFormatLimit = defaultHistoryFormatLimit
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	return &implUseCase{
		l:        l,
		llm:      llm,
		registry: registry,
		router:   rt,
		executor: executor,
		repo:     repo,
		cfg:      cfg,
		pronunciationCache: expirable.NewLRU[string, model.PronunciationAnalysis](
			cfg.CacheSize, nil, cfg.CacheTTL,
		),
	}
}
