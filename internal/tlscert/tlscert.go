// Package tlscert готовит пару сертификат/ключ для HTTPS сервера.
// Если файлы отсутствуют, пусты или сертификат просрочен, выпускается самоподписанный сертификат.
package tlscert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

var (
	ErrBlankPEM        = errors.New("blank PEM data")
	ErrCertExpired     = errors.New("certificate expired")
	ErrCertNotValidYet = errors.New("certificate not valid yet")
)

const (
	defaultValidity = 365 * 24 * time.Hour
	serialBits      = 128
)

// Options параметры выпуска сертификата.
type Options struct {
	Hosts    []string      // DNS имена и IP адреса сертификата
	Validity time.Duration // Срок действия
	Now      func() time.Time
}

// WithHosts задает имена, на которые выпускается сертификат.
func WithHosts(hosts ...string) func(*Options) {
	return func(o *Options) {
		o.Hosts = hosts
	}
}

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) func(*Options) {
	return func(o *Options) {
		o.Now = now
	}
}

// EnsurePair проверяет файлы сертификата и ключа и при необходимости выпускает новую пару.
//
// Параметры:
//   - certPath: путь к файлу сертификата
//   - keyPath: путь к файлу ключа
//   - opts: функции настройки
//
// Возвращает:
//   - bool: true, если пара была выпущена заново
//   - error: ошибка чтения, проверки или записи
func EnsurePair(certPath, keyPath string, opts ...func(*Options)) (bool, error) {
	o := Options{
		Hosts:    []string{"localhost", "127.0.0.1", "::1"},
		Validity: defaultValidity,
		Now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	checkErr := Check(certPath, keyPath, o.Now())
	switch {
	case checkErr == nil:
		return false, nil
	case errors.Is(checkErr, ErrBlankPEM), errors.Is(checkErr, ErrCertExpired):
	default:
		return false, checkErr
	}

	certPEM, keyPEM, err := Generate(o)
	if err != nil {
		return false, err
	}
	if err = writeFile(certPath, certPEM); err != nil {
		return false, fmt.Errorf("save certificate: %w", err)
	}
	if err = writeFile(keyPath, keyPEM); err != nil {
		return false, fmt.Errorf("save private key: %w", err)
	}
	return true, nil
}

// Check проверяет, что файлы содержат PEM сертификат, действующий на момент now, и ключ.
// Отсутствующий файл считается пустым.
func Check(certPath, keyPath string, now time.Time) error {
	certBytes, err := readOptional(certPath)
	if err != nil {
		return fmt.Errorf("read certificate: %w", err)
	}
	keyBytes, err := readOptional(keyPath)
	if err != nil {
		return fmt.Errorf("read private key: %w", err)
	}
	if len(certBytes) == 0 || len(keyBytes) == 0 {
		return ErrBlankPEM
	}

	block, _ := pem.Decode(certBytes)
	if block == nil {
		return errors.New("pem decode: block is nil")
	}
	if block.Type != "CERTIFICATE" {
		return fmt.Errorf("unexpected PEM block type %s", block.Type)
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return fmt.Errorf("parse certificate: %w", err)
	}
	if cert.NotBefore.After(now) {
		return ErrCertNotValidYet
	}
	if cert.NotAfter.Before(now) {
		return ErrCertExpired
	}
	return nil
}

// Generate выпускает самоподписанный ECDSA сертификат.
//
// Возвращает:
//   - []byte: сертификат в PEM
//   - []byte: приватный ключ в PEM
//   - error: ошибка генерации
func Generate(o Options) ([]byte, []byte, error) {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), serialBits))
	if err != nil {
		return nil, nil, fmt.Errorf("generate serial number: %w", err)
	}
	privKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate private key: %w", err)
	}

	now := o.Now()
	tmpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{Organization: []string{"urlmapper"}},
		NotBefore:             now.Add(-time.Minute),
		NotAfter:              now.Add(o.Validity),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}
	for _, h := range o.Hosts {
		if ip := net.ParseIP(h); ip != nil {
			tmpl.IPAddresses = append(tmpl.IPAddresses, ip)
		} else {
			tmpl.DNSNames = append(tmpl.DNSNames, h)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &privKey.PublicKey, privKey)
	if err != nil {
		return nil, nil, fmt.Errorf("generate certificate: %w", err)
	}
	keyDER, err := x509.MarshalECPrivateKey(privKey)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal private key: %w", err)
	}
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM, nil
}

func readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err //nolint:wrapcheck
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o600) //nolint:wrapcheck,mnd
}
