package cmd

import (
	"github.com/nfrund/hidaya/internal/app"
	"github.com/nfrund/hidaya/internal/config"
	"github.com/samber/do/v2"
)

// newInjector wires the same services the server uses. The CLI only needs
// the content side, so the configuration carries just the content directory.
func newInjector() do.Injector {
	return app.NewInjector(&config.Config{
		AppEnv:     "development",
		ContentDir: contentDir,
	})
}
