package sql

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/urlmapper/internal/db"
	"github.com/fsdevblog/urlmapper/internal/repositories/repotest"
)

func TestMappingRepo(t *testing.T) {
	dir := t.TempDir()
	logger := logrus.New()
	var n int

	suite.Run(t, &repotest.MappingRepoSuite{
		NewRepo: func() repotest.MappingRepository {
			n++
			conn, err := db.NewSQLite(filepath.Join(dir, fmt.Sprintf("test_%d.db", n)), logger)
			require.NoError(t, err)
			t.Cleanup(func() { _ = conn.Close() })
			return NewMappingRepo(conn.DB, logger)
		},
	})
}
