package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fsdevblog/urlmapper/internal/app"
	"github.com/fsdevblog/urlmapper/internal/bmeta"
	"github.com/fsdevblog/urlmapper/internal/config"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0 ...".
var (
	buildVersion string //nolint:gochecknoglobals
	buildDate    string //nolint:gochecknoglobals
	buildCommit  string //nolint:gochecknoglobals
)

func main() {
	appConf := config.MustLoadConfig()

	a := app.Must(app.New(*appConf))

	a.Logger.Info("Build info", bmeta.New(buildVersion, buildDate, buildCommit).Fields()...)
	a.Logger.Info("Starting server", zap.Any("config", appConf))
	if err := a.Run(); err != nil && !errors.Is(err, context.Canceled) {
		panic(err)
	}
}
