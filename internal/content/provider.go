package content

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/nfrund/hidaya/internal/annotate"
	"github.com/spf13/afero"
)

// Snapshot is an immutable view of the content served for one render pass.
type Snapshot struct {
	Site     *Site
	Glossary annotate.Glossary
}

// Provider holds the current content and swaps it atomically on reload.
type Provider struct {
	mu        sync.RWMutex
	current   Snapshot
	sources   []afero.Fs
	validator *Validator
}

// NewProvider loads and validates content from sources. It fails if the
// initial content is missing or invalid.
func NewProvider(sources ...afero.Fs) (*Provider, error) {
	p := &Provider{
		sources:   sources,
		validator: NewValidator(),
	}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Current returns the content snapshot to render with.
func (p *Provider) Current() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Reload re-reads every source. The served content only changes when the new
// content loads and validates; otherwise the previous snapshot stays in place.
func (p *Provider) Reload() error {
	site, err := Load(p.sources...)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	if err := p.validator.Validate(site); err != nil {
		return err
	}

	glossary := annotate.DefaultGlossary()
	if len(site.Glossary) > 0 {
		glossary = annotate.NewGlossary(site.Glossary)
	}

	p.mu.Lock()
	p.current = Snapshot{Site: site, Glossary: glossary}
	p.mu.Unlock()

	slog.Info("Content loaded",
		"plans", len(site.Pricing.Plans),
		"faqs", len(site.FAQs),
		"glossary_terms", glossary.Len(),
	)
	return nil
}
