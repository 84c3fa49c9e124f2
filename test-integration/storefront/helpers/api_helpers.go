package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/onsi/gomega"
)

// csrfHeader carries the CSRF token on unsafe requests
const csrfHeader = "X-CSRF-Token"

// Client talks JSON to the storefront and keeps cookies and the CSRF token
type Client struct {
	baseURL    string
	httpClient *http.Client
	csrfToken  string
}

// NewClient creates a client with an empty cookie jar
func NewClient(baseURL string) *Client {
	jar, err := cookiejar.New(nil)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Jar: jar, Timeout: 10 * time.Second},
	}
}

// Do sends a request with an optional JSON body and returns the status and body
func (c *Client) Do(method, path string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.csrfToken != "" {
		req.Header.Set(csrfHeader, c.csrfToken)
	}

	resp, err := c.httpClient.Do(req)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return resp.StatusCode, data
}

// FetchCSRFToken loads a token for subsequent unsafe requests
func (c *Client) FetchCSRFToken() {
	status, body := c.Do(http.MethodGet, "/api/v1/auth/csrf", nil)
	gomega.Expect(status).To(gomega.Equal(http.StatusOK))
	var resp struct {
		Token string `json:"token"`
	}
	gomega.Expect(json.Unmarshal(body, &resp)).To(gomega.Succeed())
	gomega.Expect(resp.Token).NotTo(gomega.BeEmpty())
	c.csrfToken = resp.Token
}

// Login signs in and returns the response status
func (c *Client) Login(email, password string) int {
	status, _ := c.Do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	return status
}

// Decode unmarshals a JSON body into T
func Decode[T any](body []byte) T {
	var v T
	gomega.ExpectWithOffset(1, json.Unmarshal(body, &v)).To(gomega.Succeed(), string(body))
	return v
}
