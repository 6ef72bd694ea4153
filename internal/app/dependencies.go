// Package app wires the application's services together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/hidaya/internal/annotate"
	"github.com/nfrund/hidaya/internal/config"
	"github.com/nfrund/hidaya/internal/content"
	"github.com/nfrund/hidaya/internal/rendering"
	"github.com/nfrund/hidaya/internal/server"
	"github.com/nfrund/hidaya/internal/telemetry"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/trace"
)

// Version is reported by the CLI and attached to trace resources.
var Version = "dev"

// Tracing is the configured tracer and the function that flushes it.
type Tracing struct {
	Tracer trace.Tracer
	Flush  func(context.Context)
}

// NewInjector registers every service the server and the CLI need. Services
// are built lazily on first use.
func NewInjector(cfg config.Provider) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.Provide(injector, provideContent)
	do.Provide(injector, provideGlossary)
	do.Provide(injector, provideRenderer)
	do.Provide(injector, provideTracing)
	do.Provide(injector, provideServer)

	return injector
}

// ContentSources returns the file systems content is read from: the embedded
// defaults, then the override directory when one is configured.
func ContentSources(dir string) []afero.Fs {
	sources := []afero.Fs{content.EmbeddedFS()}
	if dir != "" {
		sources = append(sources, content.DirFS(dir))
	}
	return sources
}

func provideContent(i do.Injector) (*content.Provider, error) {
	cfg := do.MustInvoke[config.Provider](i)
	provider, err := content.NewProvider(ContentSources(cfg.GetContentDir())...)
	if err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}
	return provider, nil
}

// provideGlossary returns the glossary of the content loaded at startup.
// Long-running handlers read it from the content provider instead so reloads
// are picked up.
func provideGlossary(i do.Injector) (annotate.Glossary, error) {
	provider, err := do.Invoke[*content.Provider](i)
	if err != nil {
		return annotate.Glossary{}, err
	}
	return provider.Current().Glossary, nil
}

func provideRenderer(do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideTracing(i do.Injector) (*Tracing, error) {
	cfg := do.MustInvoke[config.Provider](i)

	tracingCfg := telemetry.DefaultTracingConfig()
	tracingCfg.Enabled = cfg.GetTracingEnabled()
	tracingCfg.ZipkinURL = cfg.GetZipkinURL()
	tracingCfg.ServiceName = cfg.GetServiceName()
	tracingCfg.Version = Version

	tracer, flush, err := telemetry.Setup(context.Background(), tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}
	if tracingCfg.Enabled {
		slog.Info("Tracing enabled", "zipkin_url", tracingCfg.ZipkinURL)
	}
	return &Tracing{Tracer: tracer, Flush: flush}, nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	provider, err := do.Invoke[*content.Provider](i)
	if err != nil {
		return nil, err
	}
	tracing, err := do.Invoke[*Tracing](i)
	if err != nil {
		return nil, err
	}

	s := server.New(server.Dependencies{
		Config:   do.MustInvoke[config.Provider](i),
		Content:  provider,
		Renderer: do.MustInvoke[*rendering.UniversalRenderer](i),
		Tracer:   tracing.Tracer,
	})
	s.RegisterRoutes()
	return s, nil
}
