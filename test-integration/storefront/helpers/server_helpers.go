// Package helpers provides utilities for the storefront integration tests.
package helpers

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/onsi/gomega"

	"github.com/harvestlink/harvestlink/internal/app"
	"github.com/harvestlink/harvestlink/internal/service"
)

// ServerTestHelper manages the storefront server lifecycle for testing
type ServerTestHelper struct {
	ctx        context.Context
	configPath string
	baseURL    string
	address    string
	app        *app.StorefrontApp
}

// NewServerTestHelper creates a server helper listening on a free local port
func NewServerTestHelper(ctx context.Context, configPath string) *ServerTestHelper {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	address := listener.Addr().String()
	gomega.Expect(listener.Close()).To(gomega.Succeed())

	return &ServerTestHelper{
		ctx:        ctx,
		configPath: configPath,
		baseURL:    "http://" + address,
		address:    address,
	}
}

// StartServer builds the application from the configuration file and starts it
func (s *ServerTestHelper) StartServer() error {
	storefront, err := app.NewStorefrontApp(s.ctx,
		app.WithConfigFile(s.configPath),
		app.WithAddress(s.address),
	)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	s.app = storefront

	go func() {
		if err := storefront.Start(); err != nil {
			// The test will fail when it tries to connect
			fmt.Fprintf(os.Stderr, "Server start failed: %v\n", err)
		}
	}()
	return nil
}

// StopServer gracefully stops the server
func (s *ServerTestHelper) StopServer() error {
	if s.app != nil {
		return s.app.Stop(5 * time.Second)
	}
	return nil
}

// WaitForServerReady waits for the server to be ready to accept requests
func (s *ServerTestHelper) WaitForServerReady(timeout time.Duration) {
	client := &http.Client{Timeout: time.Second}
	gomega.Eventually(func() error {
		resp, err := client.Get(s.baseURL + "/readiness")
		if err != nil {
			return err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return nil
	}, timeout, 50*time.Millisecond).Should(gomega.Succeed(), "Server should be ready")
}

// Service returns the running service for seeding data
func (s *ServerTestHelper) Service() service.Service {
	return s.app.GetService()
}

// NewClient returns a browser-like client with its own cookies
func (s *ServerTestHelper) NewClient() *Client {
	return NewClient(s.baseURL)
}

// GetBaseURL returns the base URL of the server
func (s *ServerTestHelper) GetBaseURL() string {
	return s.baseURL
}

// ConfigOptions holds the settings WriteConfigYAML varies between tests
type ConfigOptions struct {
	ShippingFeeCents int64
	LoginRequests    int
	ExcludeTags      []string
}

// WriteConfigYAML writes a configuration file with memory storage, CSRF and
// rate limiting enabled, and returns its path
func WriteConfigYAML(dir string, opts ConfigOptions) string {
	keyPath := filepath.Join(dir, "csrf.key")
	if _, err := os.Stat(keyPath); os.IsNotExist(err) {
		err := os.WriteFile(keyPath, []byte(strings.Repeat("c", 32)), 0600)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	}

	loginRequests := opts.LoginRequests
	if loginRequests == 0 {
		loginRequests = 50
	}

	configContent := fmt.Sprintf(`storeName: Integration Farm

storage:
  type: memory

uploads:
  dir: %s

checkout:
  shippingFeeCents: %d
  freeShippingThresholdCents: 0

csrf:
  enabled: true
  authKeyFile: %s

rateLimit:
  enabled: true
  rules:
    login:
      requests: %d
      per: 1h

jobs:
  topProducts:
    interval: 1h
`, filepath.Join(dir, "uploads"), opts.ShippingFeeCents, keyPath, loginRequests)

	if len(opts.ExcludeTags) > 0 {
		configContent += "\ncatalog:\n  filter:\n    tags:\n      exclude:\n"
		for _, tag := range opts.ExcludeTags {
			configContent += fmt.Sprintf("        - %s\n", tag)
		}
	}

	configPath := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0600)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return configPath
}
