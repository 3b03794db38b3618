package dispatcher

import (
	"context"

	"learning-activity-agent/internal/activity"
	"learning-activity-agent/internal/agent"
	"learning-activity-agent/internal/conversation"
	"learning-activity-agent/internal/evaluation"
	"learning-activity-agent/internal/extractor"
	"learning-activity-agent/internal/resolver"
	"learning-activity-agent/internal/router"
	"learning-activity-agent/pkg/log"
)

// Deps are the collaborators of the dispatcher.
type Deps struct {
	Router     router.Router
	Extractor  extractor.Extractor
	Resolver   *resolver.Resolver
	Store      conversation.Store
	CRUD       activity.CRUD
	Catalog    activity.CatalogReader
	Categories activity.CategoryStore
	Evaluator  evaluation.Evaluator

	// CatalogWriter is optional. When set, created and deleted activities are
	// mirrored into the local catalog.
	CatalogWriter activity.CatalogWriter
}

// Config tunes the pipeline.
type Config struct {
	MaxFollowUpDepth int // start-activity follow-up recursion limit
	HistoryWindow    int // messages fed to the classifier
}

type handlerFunc func(ctx context.Context, t *turn) map[string]any

// Dispatcher routes a classified turn to its handler.
type Dispatcher struct {
	deps     Deps
	cfg      Config
	l        log.Logger
	handlers map[router.Intent]handlerFunc
}

var _ agent.Agent = (*Dispatcher)(nil)

// New creates a Dispatcher with a handler for every intent of the closed set.
func New(deps Deps, cfg Config, l log.Logger) *Dispatcher {
	if cfg.MaxFollowUpDepth <= 0 {
		cfg.MaxFollowUpDepth = DefaultMaxFollowUpDepth
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	if deps.Resolver == nil {
		deps.Resolver = resolver.New(resolver.DefaultThreshold)
	}

	d := &Dispatcher{deps: deps, cfg: cfg, l: l}
	d.handlers = map[router.Intent]handlerFunc{
		router.IntentGreetings:           d.handleGreetings,
		router.IntentCapabilities:        d.handleCapabilities,
		router.IntentStartActivity:       d.handleStart,
		router.IntentCreateActivity:      d.handleCreate,
		router.IntentGenerateActivity:    d.handleCreate,
		router.IntentEditActivity:        d.handleEdit,
		router.IntentDeleteActivity:      d.handleDelete,
		router.IntentListActivities:      d.handleList,
		router.IntentEvaluatePerformance: d.handleEvaluate,
		router.IntentUnknown:             d.handleUnknown,
	}
	return d
}
