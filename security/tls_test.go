package security

import (
	"crypto/tls"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/restfulcore/errors"
)

func writeCA(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "ca.pem")
	data := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("write ca: %v", err)
	}
	return p
}

func TestBuild_NothingConfigured(t *testing.T) {
	for _, cfg := range []*TLSConfig{nil, {}} {
		got, err := cfg.Build()
		if err != nil || got != nil {
			t.Errorf("Build(%+v) = %v, %v", cfg, got, err)
		}
	}
}

func TestBuild_Settings(t *testing.T) {
	tests := []struct {
		name string
		cfg  TLSConfig
		min  uint16
	}{
		{"skip verify", TLSConfig{SkipVerify: true}, tls.VersionTLS12},
		{"server name", TLSConfig{ServerName: "players.internal"}, tls.VersionTLS12},
		{"min version", TLSConfig{MinVersion: tls.VersionTLS13}, tls.VersionTLS13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if got.MinVersion != tt.min {
				t.Errorf("MinVersion = %x", got.MinVersion)
			}
			if got.InsecureSkipVerify != tt.cfg.SkipVerify || got.ServerName != tt.cfg.ServerName {
				t.Errorf("config = %+v", got)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "garbage.pem")
	if err := os.WriteFile(garbage, []byte("not a certificate"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cfg  TLSConfig
	}{
		{"cert without key", TLSConfig{CertFile: "client.pem"}},
		{"missing ca file", TLSConfig{CAFile: filepath.Join(t.TempDir(), "absent.pem")}},
		{"ca file without certificates", TLSConfig{CAFile: garbage}},
		{"unreadable key pair", TLSConfig{CertFile: garbage, KeyFile: garbage}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Build()
			if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestBuild_TrustsPrivateCA(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := &TLSConfig{CAFile: writeCA(t, srv)}
	tlsCfg, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	client := &http.Client{Transport: &http.Transport{TLSClientConfig: tlsCfg}}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET with private CA: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d", resp.StatusCode)
	}

	if _, err := http.Get(srv.URL); err == nil {
		t.Error("expected the default client to reject the test certificate")
	}
}
