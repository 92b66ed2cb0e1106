package smoke

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/httpclient"
	"github.com/rs/zerolog/log"
)

type Check struct {
	Name   string
	Method string
	Path   string
	Body   interface{}
}

type orderLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

var smokeItems = []orderLine{{ProductID: "smoke-product", Name: "Smoke Test Item", Price: 499, Quantity: 1}}

// DefaultChecks exercises every endpoint of the companion server with
// payloads it can reject without side effects.
func DefaultChecks() []Check {
	return []Check{
		{Name: "health", Method: http.MethodGet, Path: "/"},
		{
			Name: "create payment order", Method: http.MethodPost, Path: "/payment/create-order",
			Body: map[string]interface{}{"amount": 49900, "currency": "INR", "receipt": "smoke-test"},
		},
		{
			Name: "verify payment", Method: http.MethodPost, Path: "/payment/verify",
			Body: map[string]interface{}{
				"razorpay_order_id":   "order_smoke",
				"razorpay_payment_id": "pay_smoke",
				"razorpay_signature":  "invalid-signature",
			},
		},
		{
			Name: "cash on delivery order", Method: http.MethodPost, Path: "/payment/cod-order",
			Body: map[string]interface{}{"userId": "smoke-user", "items": smokeItems, "totalAmount": 499},
		},
		{
			Name: "place order", Method: http.MethodPost, Path: "/api/orders/place",
			Body: map[string]interface{}{"userId": "smoke-user", "items": smokeItems, "paymentMethod": "COD", "totalAmount": 499},
		},
	}
}

type Runner struct {
	baseURL string
	client  *httpclient.Client
	checks  []Check
}

func NewRunner(baseURL string, client *httpclient.Client, checks []Check) *Runner {
	if checks == nil {
		checks = DefaultChecks()
	}

	return &Runner{baseURL: strings.TrimRight(baseURL, "/"), client: client, checks: checks}
}

// Run performs every check in order. A check fails on a transport error or
// a 5xx answer; 4xx answers mean the endpoint is alive and count as passed.
func (r *Runner) Run(ctx context.Context) []dto.SmokeResult {
	results := make([]dto.SmokeResult, 0, len(r.checks))
	for _, check := range r.checks {
		results = append(results, r.run(ctx, check))
	}

	return results
}

func (r *Runner) run(ctx context.Context, check Check) dto.SmokeResult {
	result := dto.SmokeResult{Name: check.Name, Method: check.Method, Path: check.Path}

	var body []byte
	if check.Body != nil {
		var err error
		body, err = json.Marshal(check.Body)
		if err != nil {
			result.Error = err.Error()
			return result
		}
	}

	resp, err := r.client.SendRequest(ctx, httpclient.HttpRequest{
		URL:     r.baseURL + check.Path,
		Method:  check.Method,
		Body:    body,
		Headers: map[string]string{"Content-Type": "application/json"},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SmokeRunner").Str("path", check.Path).Msg("")
		result.Error = err.Error()
		return result
	}

	result.StatusCode = resp.StatusCode
	result.Passed = resp.StatusCode < http.StatusInternalServerError
	if !result.Passed {
		result.Error = strings.TrimSpace(string(resp.Body))
	}

	return result
}

func Passed(results []dto.SmokeResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}

	return true
}
