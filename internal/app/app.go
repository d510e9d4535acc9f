package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fsdevblog/urlmapper/internal/cache"
	"github.com/fsdevblog/urlmapper/internal/cache/localcache"
	"github.com/fsdevblog/urlmapper/internal/cache/rediscache"
	"github.com/fsdevblog/urlmapper/internal/config"
	"github.com/fsdevblog/urlmapper/internal/controllers"
	"github.com/fsdevblog/urlmapper/internal/db"
	"github.com/fsdevblog/urlmapper/internal/logs"
	"github.com/fsdevblog/urlmapper/internal/services"
	"github.com/fsdevblog/urlmapper/internal/slug"
	"github.com/fsdevblog/urlmapper/internal/tlscert"
)

const (
	initTimeout   = 10 * time.Second
	backupTimeout = 10 * time.Second
)

type App struct {
	config     config.Config
	dbServices *services.Services
	closers    []func() error
	Logger     *zap.Logger
}

// New создает приложение: логгер, подключение к хранилищу, кеш и сервисный слой.
//
// Параметры:
//   - conf: конфигурация приложения
//
// Возвращает:
//   - *App: приложение, готовое к запуску
//   - error: ошибка инициализации
func New(conf config.Config) (*App, error) {
	logger, logErr := logs.New(logs.WithLevel(conf.LogLevel), logs.WithFile(conf.LogFile))
	if logErr != nil {
		return nil, fmt.Errorf("init logger: %w", logErr)
	}

	a := &App{config: conf, Logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	if err := a.initServices(ctx); err != nil {
		_ = a.close()
		return nil, fmt.Errorf("init services: %w", err)
	}
	return a, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	defer func() {
		if err := a.close(); err != nil {
			a.Logger.Error("close resources", zap.Error(err))
		}
		_ = a.Logger.Sync()
	}()

	if restoreErr := a.restoreBackup(); restoreErr != nil {
		return fmt.Errorf("run app: %w", restoreErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := controllers.SetupRouter(controllers.RouterParams{
		MappingService: a.dbServices.MappingService,
		Resolver:       a.dbServices.Resolver,
		PingService:    a.dbServices.PingService,
		AppConf:        a.config,
		Logger:         a.Logger,
	})
	server := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- a.serve(server)
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.Error("server error", zap.Error(serverErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("graceful shutdown", zap.Error(err))
	}

	a.backup()
	return serverErr
}

// serve запускает HTTP или HTTPS сервер. Закрытие сервера через Shutdown не считается ошибкой.
func (a *App) serve(server *http.Server) error {
	var err error
	if a.config.TLSEnabled() {
		generated, certErr := tlscert.EnsurePair(a.config.TLSCertFile, a.config.TLSKeyFile,
			tlscert.WithHosts(a.certHosts()...))
		if certErr != nil {
			return fmt.Errorf("prepare tls certificate: %w", certErr)
		}
		if generated {
			a.Logger.Warn("Self-signed certificate generated",
				zap.String("cert", a.config.TLSCertFile), zap.String("key", a.config.TLSKeyFile))
		}
		a.Logger.Info("Listening HTTPS", zap.String("addr", server.Addr))
		err = server.ListenAndServeTLS(a.config.TLSCertFile, a.config.TLSKeyFile)
	} else {
		a.Logger.Info("Listening HTTP", zap.String("addr", server.Addr))
		err = server.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err //nolint:wrapcheck
}

// certHosts имена для самоподписанного сертификата: localhost и хост BASE_URL.
func (a *App) certHosts() []string {
	hosts := []string{"localhost", "127.0.0.1", "::1"}
	if a.config.BaseURL == "" {
		return hosts
	}
	u, err := url.Parse(a.config.BaseURL)
	if err != nil {
		return hosts
	}
	host := u.Host
	if h, _, splitErr := net.SplitHostPort(host); splitErr == nil {
		host = h
	}
	return append(hosts, host)
}

func (a *App) restoreBackup() error {
	if !a.dbServices.BackupService.Enabled() || a.config.FileStoragePath == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
	defer cancel()

	if err := a.dbServices.BackupService.RestoreBackup(ctx, a.config.FileStoragePath); err != nil {
		return fmt.Errorf("restore backup from file `%s`: %w", a.config.FileStoragePath, err)
	}
	a.Logger.Info("Backup restored", zap.String("file", a.config.FileStoragePath))
	return nil
}

func (a *App) backup() {
	if !a.dbServices.BackupService.Enabled() || a.config.FileStoragePath == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
	defer cancel()

	if err := a.dbServices.BackupService.Backup(ctx, a.config.FileStoragePath); err != nil {
		a.Logger.Error("Making backup error", zap.String("file", a.config.FileStoragePath), zap.Error(err))
		return
	}
	a.Logger.Info("Successfully made backup", zap.String("file", a.config.FileStoragePath))
}

// close освобождает ресурсы в порядке, обратном созданию.
func (a *App) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// initServices создает подключение к хранилищу, кеш и сервисный слой приложения.
func (a *App) initServices(ctx context.Context) error {
	storageType := whatIsDBStorageType(&a.config)
	a.Logger.Info("Connecting storage", zap.String("type", string(storageType)))

	dbConn, connErr := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType:  storageType,
		PostgresDSN:  &a.config.DatabaseDSN,
		SqliteDBPath: &a.config.SQLitePath,
		Logger:       logs.NewLogrus(),
	})
	if connErr != nil {
		return connErr //nolint:wrapcheck
	}
	a.closers = append(a.closers, closerFor(dbConn))

	c, cacheErr := a.initCache(ctx)
	if cacheErr != nil {
		return cacheErr
	}

	dbServices, dbServErr := services.Factory(dbConn, whatIsServiceType(&a.config), services.FactoryParams{
		Cache: c,
		Slugs: slug.New(slug.WithLength(a.config.SlugLength)),
		Opts: []func(*services.Options){
			services.WithStoreTimeout(a.config.StoreTimeout),
			services.WithCacheTTL(a.config.CacheTTL),
			services.WithLogger(a.Logger),
		},
	})
	if dbServErr != nil {
		return dbServErr //nolint:wrapcheck
	}
	a.dbServices = dbServices
	return nil
}

// initCache выбирает кеш разрешения ссылок. По умолчанию кешируется только в Redis,
// общем для всех экземпляров; локальный кеш включается явно через LocalCache.
func (a *App) initCache(ctx context.Context) (cache.Cache, error) {
	switch {
	case a.config.CacheTTL == 0:
		return cache.Noop{}, nil
	case a.config.RedisAddr != "":
		client, err := rediscache.NewClient(ctx, a.config.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		return rediscache.New(client), nil
	case a.config.LocalCache:
		return localcache.New(), nil
	default:
		return cache.Noop{}, nil
	}
}

// closerFor возвращает функцию закрытия подключения, созданного db.NewConnectionFactory.
func closerFor(conn any) func() error {
	switch c := conn.(type) {
	case interface{ Close() error }:
		return c.Close
	case interface{ Close() }:
		return func() error {
			c.Close()
			return nil
		}
	default:
		return func() error { return nil }
	}
}

func whatIsDBStorageType(appConf *config.Config) db.StorageType {
	switch {
	case appConf.DatabaseDSN != "":
		return db.StorageTypePostgres
	case appConf.SQLitePath != "":
		return db.StorageTypeSQLite
	default:
		return db.StorageTypeInMemory
	}
}

func whatIsServiceType(appConf *config.Config) services.ServiceType {
	switch {
	case appConf.DatabaseDSN != "":
		return services.ServiceTypePostgres
	case appConf.SQLitePath != "":
		return services.ServiceTypeSQLite
	default:
		return services.ServiceTypeInMemory
	}
}
