// Package bmeta сведения о сборке, передаваемые через ldflags.
package bmeta

import "go.uber.org/zap"

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Meta версия, дата и коммит сборки.
type Meta struct {
	Version string
	Date    string
	Commit  string
}

// New подставляет N/A вместо незаданных значений.
func New(version, date, commit string) Meta {
	return Meta{
		Version: orDefault(version),
		Date:    orDefault(date),
		Commit:  orDefault(commit),
	}
}

// Fields поля для структурного лога.
func (m Meta) Fields() []zap.Field {
	return []zap.Field{
		zap.String("build_version", m.Version),
		zap.String("build_date", m.Date),
		zap.String("build_commit", m.Commit),
	}
}

func orDefault(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
