package logs

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EncodingType определяет формат вывода логов.
type EncodingType string

// LevelType определяет уровень логирования.
type LevelType string

// EncodingTypeConsole Форматирование для консоли.
// EncodingTypeJSON Форматирование в JSON.
const (
	EncodingTypeConsole EncodingType = "console"
	EncodingTypeJSON    EncodingType = "json"
)

// LevelTypeDebug Отладочный уровень.
// LevelTypeInfo Информационный уровень.
// LevelTypeWarning Уровень предупреждений.
// LevelTypeError Уровень ошибок.
// LevelTypeFatal Фатальный уровень.
// LevelTypePanic Уровень паники.
const (
	LevelTypeDebug   LevelType = "debug"
	LevelTypeInfo    LevelType = "info"
	LevelTypeWarning LevelType = "warn"
	LevelTypeError   LevelType = "error"
	LevelTypeFatal   LevelType = "fatal"
	LevelTypePanic   LevelType = "panic"
)

// LoggerOptions настройки логгера.
type LoggerOptions struct {
	Level            LevelType      // Уровень логирования
	Encoding         EncodingType   // Формат вывода
	OutputPaths      []string       // Пути вывода логов
	ErrorOutputPaths []string       // Пути вывода ошибок
	InitialFields    map[string]any // Начальные поля для каждой записи
	File             *FileOptions   // Дополнительная запись в файл с ротацией
}

// FileOptions настройки записи логов в файл.
type FileOptions struct {
	Filename   string // Путь к файлу
	MaxSizeMB  int    // Размер файла, после которого он ротируется
	MaxBackups int    // Сколько старых файлов хранить
	MaxAgeDays int    // Сколько дней хранить старые файлы
	Compress   bool   // Сжимать ротированные файлы
}

// Значения по умолчанию для ротации файла логов.
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

// WithLevel задает уровень логирования. Пустая строка оставляет уровень по умолчанию.
func WithLevel(level string) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		if level != "" {
			o.Level = LevelType(level)
		}
	}
}

// WithFile включает запись логов в файл с ротацией. Пустой путь ничего не меняет.
func WithFile(filename string) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		if filename == "" {
			return
		}
		o.File = &FileOptions{
			Filename:   filename,
			MaxSizeMB:  DefaultMaxSizeMB,
			MaxBackups: DefaultMaxBackups,
			MaxAgeDays: DefaultMaxAgeDays,
			Compress:   true,
		}
	}
}

// New создает новый логгер с указанными настройками.
//
// Параметры:
//   - opts: функции для настройки логгера
//
// Возвращает:
//   - *zap.Logger: настроенный логгер
//   - error: ошибка создания логгера
func New(opts ...func(*LoggerOptions)) (*zap.Logger, error) {
	isProduction := isReleaseMode()

	var encoding = EncodingTypeConsole
	var level = LevelTypeDebug
	if isProduction {
		encoding = EncodingTypeJSON
		level = LevelTypeInfo
	}

	options := LoggerOptions{
		Level:            level,
		Encoding:         encoding,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	for _, opt := range opts {
		opt(&options)
	}

	lvl, errLvl := zap.ParseAtomicLevel(string(options.Level))
	if errLvl != nil {
		return nil, fmt.Errorf("parse level: %s", errLvl.Error())
	}

	conf := zap.Config{
		Level:             lvl,
		Development:       !isProduction,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          string(options.Encoding),
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:          "msg",
			LevelKey:            "level",
			TimeKey:             "ts",
			NameKey:             "logger",
			CallerKey:           "caller",
			FunctionKey:         zapcore.OmitKey,
			StacktraceKey:       "stacktrace",
			SkipLineEnding:      false,
			LineEnding:          zapcore.DefaultLineEnding,
			EncodeLevel:         zapcore.LowercaseLevelEncoder,
			EncodeTime:          zapcore.ISO8601TimeEncoder,
			EncodeDuration:      zapcore.StringDurationEncoder,
			EncodeCaller:        zapcore.ShortCallerEncoder,
			EncodeName:          nil,
			NewReflectedEncoder: nil,
			ConsoleSeparator:    "",
		},
		OutputPaths:      options.OutputPaths,
		ErrorOutputPaths: options.ErrorOutputPaths,
		InitialFields:    options.InitialFields,
	}

	buildOpts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if options.File != nil {
		buildOpts = append(buildOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore(options.File, conf.EncoderConfig, lvl))
		}))
	}

	log, err := conf.Build(buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("build logger: %s", err.Error())
	}
	return log, nil
}

// fileCore создает ядро zap, пишущее JSON в файл с ротацией через lumberjack.
func fileCore(opts *FileOptions, encCfg zapcore.EncoderConfig, lvl zap.AtomicLevel) zapcore.Core {
	writer := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(writer), lvl)
}

func isReleaseMode() bool {
	return os.Getenv("GIN_MODE") == "release"
}

// MustNew создает новый логгер с указанными настройками.
// В случае ошибки вызывает panic.
//
// Параметры:
//   - opts: функции для настройки логгера
//
// Возвращает:
//   - *zap.Logger: настроенный логгер
func MustNew(opts ...func(*LoggerOptions)) *zap.Logger {
	log, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return log
}
