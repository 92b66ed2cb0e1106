package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/httpclient"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ProviderError is a non 2xx answer from the shipping provider. Body holds
// the raw response so callers can show what the provider said.
type ProviderError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("shipping provider: %s %s returned %d", e.Method, e.Path, e.StatusCode)
}

func (e *ProviderError) Unwrap() error {
	return errs.ErrUpstream
}

type Client struct {
	baseURL string
	http    *httpclient.Client
	token   string
}

func NewClient(baseURL string, client *httpclient.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

// Token returns the bearer token of the last successful login.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Login(ctx context.Context, email string, password string) (resp dto.ShippingLoginResponse, err error) {
	if email == "" || password == "" {
		return resp, fmt.Errorf("SHIPPING_EMAIL and SHIPPING_PASSWORD: %w", errs.ErrMissingSetting)
	}

	err = c.do(ctx, http.MethodPost, "/auth/login", dto.ShippingLoginRequest{Email: email, Password: password}, false, &resp)
	if err != nil {
		return
	}

	if resp.Token == "" {
		return resp, &ProviderError{Method: http.MethodPost, Path: "/auth/login", StatusCode: http.StatusOK, Body: []byte("login response carried no token")}
	}

	c.token = resp.Token
	return resp, nil
}

func (c *Client) ListOrders(ctx context.Context, page int) (list dto.ShippingOrderList, err error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	err = c.do(ctx, http.MethodGet, "/orders?"+query.Encode(), nil, true, &list)
	return
}

func (c *Client) CreateAdhocOrder(ctx context.Context, payload dto.AdhocOrderRequest) (resp dto.AdhocOrderResponse, err error) {
	err = c.do(ctx, http.MethodPost, "/orders/create/adhoc", payload, true, &resp)
	return
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, authorized bool, out interface{}) error {
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	if authorized {
		if c.token == "" {
			return errs.ErrNotLoggedIn
		}
		headers["Authorization"] = "Bearer " + c.token
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
	}

	resp, err := c.http.SendRequest(ctx, httpclient.HttpRequest{
		URL:     c.baseURL + path,
		Method:  method,
		Body:    payload,
		Headers: headers,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ShippingClient").Str("path", path).Msg("")
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: resp.Body}
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &ProviderError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: resp.Body}
	}

	return nil
}

// DemoOrder builds a small prepaid order shipped to a test address.
func DemoOrder(now time.Time) dto.AdhocOrderRequest {
	items := []dto.AdhocOrderItem{
		{Name: "Pure Silk Saree", SKU: "SAREE-SILK-01", Units: 1, SellingPrice: 4999},
		{Name: "Wool Blend Oversized Scarf", SKU: "SCARF-WOOL-02", Units: 2, SellingPrice: 1299},
	}

	var subTotal float64
	for _, item := range items {
		subTotal += item.SellingPrice * float64(item.Units)
	}

	return dto.AdhocOrderRequest{
		OrderID:             "DEMO-" + strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0]),
		OrderDate:           utils.FormatProviderDate(now),
		PickupLocation:      "Primary",
		BillingCustomerName: "Test",
		BillingLastName:     "Customer",
		BillingAddress:      "221 MG Road",
		BillingCity:         "Bengaluru",
		BillingPincode:      "560001",
		BillingState:        "Karnataka",
		BillingCountry:      "India",
		BillingEmail:        "test.customer@store.example",
		BillingPhone:        "9876543210",
		ShippingIsBilling:   true,
		OrderItems:          items,
		PaymentMethod:       "Prepaid",
		SubTotal:            subTotal,
		Length:              30,
		Breadth:             25,
		Height:              5,
		Weight:              0.8,
	}
}
