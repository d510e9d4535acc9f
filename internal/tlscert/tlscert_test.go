package tlscert

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TLSCertSuite struct {
	suite.Suite
	certPath string
	keyPath  string
}

func TestTLSCertSuite(t *testing.T) {
	suite.Run(t, new(TLSCertSuite))
}

func (s *TLSCertSuite) SetupTest() {
	dir := s.T().TempDir()
	s.certPath = filepath.Join(dir, "tls", "cert.pem")
	s.keyPath = filepath.Join(dir, "tls", "key.pem")
}

func (s *TLSCertSuite) TestEnsurePair_Generates() {
	generated, err := EnsurePair(s.certPath, s.keyPath)
	s.Require().NoError(err)
	s.True(generated)

	_, loadErr := tls.LoadX509KeyPair(s.certPath, s.keyPath)
	s.Require().NoError(loadErr)

	again, err := EnsurePair(s.certPath, s.keyPath)
	s.Require().NoError(err)
	s.False(again, "valid pair must be kept")
}

func (s *TLSCertSuite) TestEnsurePair_RegeneratesExpired() {
	past := time.Now().AddDate(-2, 0, 0)
	_, err := EnsurePair(s.certPath, s.keyPath, WithClock(func() time.Time { return past }))
	s.Require().NoError(err)
	s.Require().ErrorIs(Check(s.certPath, s.keyPath, time.Now()), ErrCertExpired)

	generated, err := EnsurePair(s.certPath, s.keyPath)
	s.Require().NoError(err)
	s.True(generated)
	s.NoError(Check(s.certPath, s.keyPath, time.Now()))
}

func (s *TLSCertSuite) TestCheck() {
	s.ErrorIs(Check(s.certPath, s.keyPath, time.Now()), ErrBlankPEM)

	s.Require().NoError(os.MkdirAll(filepath.Dir(s.certPath), 0o755))
	s.Require().NoError(os.WriteFile(s.certPath, []byte("garbage"), 0o600))
	s.Require().NoError(os.WriteFile(s.keyPath, []byte("garbage"), 0o600))
	s.Error(Check(s.certPath, s.keyPath, time.Now()))

	_, err := EnsurePair(s.certPath, s.keyPath)
	s.Error(err, "corrupted files are not overwritten")
}

func (s *TLSCertSuite) TestCheck_NotValidYet() {
	future := time.Now().AddDate(1, 0, 0)
	_, err := EnsurePair(s.certPath, s.keyPath, WithClock(func() time.Time { return future }))
	s.Require().NoError(err)
	s.ErrorIs(Check(s.certPath, s.keyPath, time.Now()), ErrCertNotValidYet)
}
