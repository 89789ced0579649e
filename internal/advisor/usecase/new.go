package usecase

import (
	"context"

	"course-compass/internal/advisor"
	"course-compass/internal/agent"
	"course-compass/internal/catalog"
	"course-compass/internal/servicecontext"
	"course-compass/pkg/llmprovider"
	"course-compass/pkg/log"
)

// Generator is the model call. *llmprovider.Manager implements it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// ContextLoader supplies the static service documents.
type ContextLoader interface {
	Load(ctx context.Context) servicecontext.Documents
}

// Config wires the advisor. All fields except Temperature are required.
// A nil Temperature means DefaultTemperature; zero is kept as zero.
type Config struct {
	Generator   Generator
	Registry    *agent.ToolRegistry
	Context     ContextLoader
	Catalog     *catalog.Catalog
	Temperature *float64
}

type implUseCase struct {
	llm         Generator
	registry    *agent.ToolRegistry
	docs        ContextLoader
	catalog     string
	temperature float64
	l           log.Logger
}

// New creates the advisor UseCase. The catalog is rendered once.
func New(cfg Config, l log.Logger) advisor.UseCase {
	temp := DefaultTemperature
	if cfg.Temperature != nil {
		temp = *cfg.Temperature
	}
	return &implUseCase{
		llm:         cfg.Generator,
		registry:    cfg.Registry,
		docs:        cfg.Context,
		catalog:     cfg.Catalog.Render(),
		temperature: temp,
		l:           l,
	}
}
