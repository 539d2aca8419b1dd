package clients

import (
	"net/http"
	"time"
)

const timeout = time.Second * 15

// HTTPClientI is the outbound request surface used for webhook delivery.
type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(client HTTPClientI) {
	h.client = client
}
