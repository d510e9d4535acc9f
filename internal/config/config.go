package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Значения по умолчанию.
const (
	DefaultServerAddress     = ":8000"
	DefaultClientDefaultPort = 3000
	DefaultCacheTTL          = 5 * time.Minute
	DefaultStoreTimeout      = 3 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultSlugLength        = 8
)

type Config struct {
	// Адрес, на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес коротких ссылок (Scheme://Host). Если пуст, берется из входящего запроса
	BaseURL string `env:"BASE_URL"`
	// Строка подключения к PostgreSQL
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь к файлу SQLite
	SQLitePath string `env:"SQLITE_PATH"`
	// Путь к файлу снимка in-memory хранилища
	FileStoragePath string `env:"FILE_STORAGE_PATH"`
	// Адрес Redis для кеша разрешения ссылок
	RedisAddr string `env:"REDIS_ADDR"`
	// Локальный кеш в памяти процесса, если Redis не задан. Годится только для одного экземпляра
	LocalCache bool `env:"LOCAL_CACHE"`
	// Время жизни записи в кеше, 0 выключает кеширование
	CacheTTL time.Duration `env:"CACHE_TTL"`
	// Таймаут одного обращения к хранилищу
	StoreTimeout time.Duration `env:"STORE_TIMEOUT"`
	// Сколько ждать завершения запросов при остановке
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	// Длина генерируемого слага
	SlugLength int `env:"SLUG_LENGTH"`
	// Порт клиента по умолчанию, отдается в GET /
	ClientDefaultPort int `env:"CLIENT_DEFAULT_PORT"`
	// Сертификат и ключ для HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
	// Уровень и файл логов
	LogLevel string `env:"LOG_LEVEL"`
	LogFile  string `env:"LOG_FILE"`
}

// TLSEnabled сообщает, заданы ли сертификат и ключ.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// LoadConfig собирает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
//
// Параметры:
//   - args: аргументы командной строки без имени программы
//
// Возвращает:
//   - *Config: конфигурация
//   - error: ошибка разбора
func LoadConfig(args []string) (*Config, error) {
	var conf Config

	if err := loadFlags(&conf, args); err != nil {
		return nil, errors.Wrap(err, "parse flags config error")
	}

	if err := env.Parse(&conf); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	if err := conf.normalize(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// MustLoadConfig вызывает панику, если конфигурацию не удалось загрузить.
func MustLoadConfig() *Config {
	conf, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return conf
}

// loadFlags парсит флаги командной строки.
func loadFlags(conf *Config, args []string) error {
	fs := flag.NewFlagSet("urlmapper", flag.ContinueOnError)

	fs.StringVar(&conf.ServerAddress, "a", DefaultServerAddress, "Адрес сервера")
	fs.StringVar(&conf.BaseURL, "b", "",
		"Базовый адрес коротких ссылок (по умолчанию Scheme://Host входящего запроса)")
	fs.StringVar(&conf.DatabaseDSN, "d", "", "Строка подключения к PostgreSQL")
	fs.StringVar(&conf.SQLitePath, "s", "", "Путь к файлу SQLite")
	fs.StringVar(&conf.FileStoragePath, "f", "", "Путь к файлу снимка in-memory хранилища")
	fs.StringVar(&conf.RedisAddr, "r", "", "Адрес Redis")
	fs.BoolVar(&conf.LocalCache, "local-cache", false, "Локальный кеш, если Redis не задан")
	fs.DurationVar(&conf.CacheTTL, "cache-ttl", DefaultCacheTTL, "Время жизни записи в кеше")
	fs.DurationVar(&conf.StoreTimeout, "store-timeout", DefaultStoreTimeout, "Таймаут обращения к хранилищу")
	fs.DurationVar(&conf.ShutdownTimeout, "shutdown-timeout", DefaultShutdownTimeout, "Таймаут остановки сервера")
	fs.IntVar(&conf.SlugLength, "slug-length", DefaultSlugLength, "Длина генерируемого слага")
	fs.IntVar(&conf.ClientDefaultPort, "client-port", DefaultClientDefaultPort, "Порт клиента по умолчанию")
	fs.StringVar(&conf.TLSCertFile, "tls-cert", "", "Файл сертификата")
	fs.StringVar(&conf.TLSKeyFile, "tls-key", "", "Файл ключа")
	fs.StringVar(&conf.LogLevel, "log-level", "", "Уровень логирования")
	fs.StringVar(&conf.LogFile, "log-file", "", "Файл логов")

	return fs.Parse(args) //nolint:wrapcheck
}

// normalize проверяет значения и отсекает Path и Query у базового адреса.
func (c *Config) normalize() error {
	if c.BaseURL != "" {
		parsedURL, err := url.ParseRequestURI(c.BaseURL)
		if err != nil {
			return errors.Wrap(err, "failed to parse base url")
		}
		if parsedURL.Scheme == "" || parsedURL.Host == "" {
			return fmt.Errorf("base url `%s` must contain scheme and host", c.BaseURL)
		}
		c.BaseURL = (&url.URL{Scheme: parsedURL.Scheme, Host: parsedURL.Host}).String()
	}
	if c.SlugLength <= 0 {
		return fmt.Errorf("slug length must be positive, got %d", c.SlugLength)
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("store timeout must be positive, got %s", c.StoreTimeout)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative, got %s", c.CacheTTL)
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return errors.New("tls cert and key must be set together")
	}
	return nil
}
