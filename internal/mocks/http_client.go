package mocks

import (
	"context"
	"io"
	"net/http"

	"github.com/Behyna/common/pkg/httpclient"
	"github.com/stretchr/testify/mock"
)

type HTTPClient struct {
	mock.Mock
	// Embedded to satisfy SetTimeout, whose return type is unexported upstream.
	httpclient.HTTPClient
}

func (m *HTTPClient) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	args := m.Called(ctx, url, headers)
	return response(args.Get(0)), args.Error(1)
}

func (m *HTTPClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	args := m.Called(ctx, url, body, headers)
	return response(args.Get(0)), args.Error(1)
}

func (m *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return response(args.Get(0)), args.Error(1)
}

func response(value interface{}) *http.Response {
	resp, _ := value.(*http.Response)
	return resp
}
