package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HttpRequest is a struct to hold request parameters
type HttpRequest struct {
	URL     string
	Method  string
	Body    []byte
	Headers map[string]string
}

// Response is the status code and raw body of a completed request.
type Response struct {
	StatusCode int
	Body       []byte
}

var errServerSide = errors.New("server side failure")

// Client sends requests through an otelhttp transport and, when a breaker
// is set, through the breaker. 5xx answers count as breaker failures but
// are still returned to the caller with their body.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[Response]
}

func NewClient(timeout time.Duration, breaker *gobreaker.CircuitBreaker[Response]) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: breaker,
	}
}

// SendRequest sends an HTTP request based on the given HttpRequest struct
func (c *Client) SendRequest(ctx context.Context, req HttpRequest) (Response, error) {
	if c.breaker == nil {
		return c.do(ctx, req)
	}

	resp, err := c.breaker.Execute(func() (Response, error) {
		resp, err := c.do(ctx, req)
		if err != nil {
			return resp, err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerSide
		}

		return resp, nil
	})

	switch {
	case errors.Is(err, errServerSide):
		return resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return resp, fmt.Errorf("%s %s: %w", req.Method, req.URL, errs.ErrUpstreamDown)
	}

	return resp, err
}

func (c *Client) do(ctx context.Context, req HttpRequest) (Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewBuffer(req.Body)
	}

	request, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range req.Headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return Response{}, fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		return Response{StatusCode: response.StatusCode}, fmt.Errorf("failed to read response body: %w", err)
	}

	return Response{StatusCode: response.StatusCode, Body: respBody}, nil
}
