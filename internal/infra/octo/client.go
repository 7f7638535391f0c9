package octo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"octo-connect/internal/domain/credential"
	"octo-connect/internal/infra"
	"octo-connect/internal/pkg/config"
)

// Client issues authenticated calls against the supplier endpoint and
// normalizes failures into infra.SupplierError.
type Client struct {
	base         string
	capabilities string
	http         *http.Client
	sink         EventSink
}

func NewClient(cfg config.SupplierConfig, sink EventSink) *Client {
	if sink == nil {
		sink = NopSink{}
	}
	return &Client{
		base:         strings.TrimRight(cfg.Endpoint, "/"),
		capabilities: cfg.Capabilities,
		http:         &http.Client{Timeout: cfg.Timeout},
		sink:         sink,
	}
}

func (c *Client) Products(ctx context.Context, cred credential.Credential) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, cred, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, cred credential.Credential, productID string) (Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(productID), nil, nil, cred, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

func (c *Client) Availability(ctx context.Context, cred credential.Credential, req AvailabilityRequest) ([]Availability, error) {
	var out []Availability
	if err := c.do(ctx, http.MethodPost, "/availability", nil, req, cred, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AvailabilityCalendar(ctx context.Context, cred credential.Credential, req AvailabilityRequest) ([]Availability, error) {
	var out []Availability
	if err := c.do(ctx, http.MethodPost, "/availability/calendar", nil, req, cred, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, cred credential.Credential, req CreateBookingRequest) (Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, req, cred, &out); err != nil {
		return Booking{}, err
	}
	return out, nil
}

func (c *Client) ConfirmBooking(ctx context.Context, cred credential.Credential, bookingUUID string, req ConfirmBookingRequest) (Booking, error) {
	var out Booking
	path := "/bookings/" + url.PathEscape(bookingUUID) + "/confirm"
	if err := c.do(ctx, http.MethodPost, path, nil, req, cred, &out); err != nil {
		return Booking{}, err
	}
	return out, nil
}

func (c *Client) CancelBooking(ctx context.Context, cred credential.Credential, bookingID string, req CancelBookingRequest) (Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(bookingID), nil, req, cred, &out); err != nil {
		return Booking{}, err
	}
	return out, nil
}

func (c *Client) Booking(ctx context.Context, cred credential.Credential, bookingID string) (Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(bookingID), nil, nil, cred, &out); err != nil {
		return Booking{}, err
	}
	return out, nil
}

func (c *Client) ListBookings(ctx context.Context, cred credential.Credential, params url.Values) ([]Booking, error) {
	var out []Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", params, nil, cred, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, cred credential.Credential, out any) error {
	u := c.base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var payload []byte
	var reader io.Reader
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return infra.NewSupplierError(infra.KindTransport, 0, "", "failed to encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return infra.NewSupplierError(infra.KindTransport, 0, "", "failed to build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+cred.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Octo-Capabilities", c.capabilities)

	event := RequestEvent{
		Method:  method,
		URL:     u,
		Headers: redactHeaders(req.Header),
		Body:    payload,
	}
	c.sink.OnRequest(event)

	res, err := c.http.Do(req)
	if err != nil {
		err = infra.NewSupplierError(infra.KindTransport, 0, "", "supplier call failed", err)
		c.sink.OnError(ErrorEvent{Request: event, Err: err})
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		err = infra.NewSupplierError(infra.KindTransport, res.StatusCode, "", "failed to read response body", err)
		c.sink.OnError(ErrorEvent{Request: event, Err: err})
		return err
	}
	c.sink.OnResponse(ResponseEvent{
		Request:    event,
		StatusCode: res.StatusCode,
		Headers:    res.Header,
		Body:       resBody,
	})

	if res.StatusCode < 200 || res.StatusCode > 299 {
		err = c.normalizeError(res.StatusCode, resBody)
		c.sink.OnError(ErrorEvent{Request: event, Err: err})
		return err
	}

	if out == nil || len(resBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(resBody, out); err != nil {
		return infra.NewSupplierError(infra.KindUpstream, res.StatusCode, "", "failed to decode response body", err)
	}
	return nil
}

// normalizeError keeps the supplier's own error detail when it sent one
// instead of collapsing everything into a generic transport error.
func (c *Client) normalizeError(status int, body []byte) error {
	var detail apiError
	_ = json.Unmarshal(body, &detail)

	msg := detail.Message
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	kind := infra.KindUpstream
	switch {
	case status == http.StatusNotFound:
		kind = infra.KindNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = infra.KindUnauthorized
	case status >= 400 && status < 500:
		kind = infra.KindBadRequest
	}
	return infra.NewSupplierError(kind, status, detail.Code, msg, nil)
}

func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	if out.Get("Authorization") != "" {
		out.Set("Authorization", "Bearer [redacted]")
	}
	return out
}
