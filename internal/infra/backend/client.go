package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gym-reserve/internal/domain/booking"
	"gym-reserve/internal/domain/order"
	"gym-reserve/internal/domain/venue"
	"gym-reserve/internal/infra"
	"gym-reserve/internal/pkg/config"

	"github.com/tidwall/gjson"
)

const (
	maxBodySize = 4 * 1024 * 1024 // 4MB

	routeVenueDetail = "/api/gym/detail"
	routeOrderList   = "/api/order/listForGymOrder"
	routeAddOrder    = "/api/order/addByUid"
)

// Client talks to the venue booking site. It never retries; every failure is
// reported once as an infra.BackendError.
type Client struct {
	http        *http.Client
	baseURL     string
	userAgent   string
	referer     string
	orderStates string
	logger      *slog.Logger
}

func NewClient(cfg config.Config, logger *slog.Logger) *Client {
	return &Client{
		http:        &http.Client{Timeout: cfg.Backend.Timeout},
		baseURL:     cfg.Backend.BaseURL,
		userAgent:   cfg.Backend.UserAgent,
		referer:     cfg.Backend.Referer,
		orderStates: strings.Join(cfg.Backend.OrderStates, ","),
		logger:      logger,
	}
}

func (c *Client) FetchVenueDetail(ctx context.Context, venueID int64) (venue.Detail, error) {
	body, err := c.get(ctx, url.Values{
		"s":     {routeVenueDetail},
		"gymId": {strconv.FormatInt(venueID, 10)},
	})
	if err != nil {
		return venue.Detail{}, err
	}

	detail, err := decodeDetail(body)
	if err != nil {
		return venue.Detail{}, infra.WrapBackendErr(infra.KindDataShape,
			fmt.Sprintf("venue %d detail", venueID), err)
	}
	return detail, nil
}

func (c *Client) FetchOrders(ctx context.Context, venueID int64, date string) ([]order.Order, error) {
	body, err := c.get(ctx, url.Values{
		"s":         {routeOrderList},
		"state":     {c.orderStates},
		"orderDate": {date},
		"gymId":     {strconv.FormatInt(venueID, 10)},
	})
	if err != nil {
		return nil, err
	}

	orders, err := decodeOrders(body, venueID, date)
	if err != nil {
		return nil, infra.WrapBackendErr(infra.KindDataShape,
			fmt.Sprintf("venue %d orders on %s", venueID, date), err)
	}
	return orders, nil
}

func (c *Client) SubmitBooking(ctx context.Context, payload booking.Payload) error {
	raw, err := json.Marshal(booking.Envelope{Form: payload})
	if err != nil {
		return infra.WrapBackendErr(infra.KindDataShape, "encode booking", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, url.Values{"s": {routeAddOrder}}, bytes.NewReader(raw))
	if err != nil {
		return infra.WrapBackendErr(infra.KindTransport, "build booking request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.send(req)
	if err != nil {
		return infra.WrapBackendErr(infra.KindTransport, "submit booking", err)
	}
	if status != http.StatusOK {
		msg := fmt.Sprintf("booking rejected with HTTP %d", status)
		if m := gjson.Get(body, "msg"); m.Exists() && m.String() != "" {
			msg += ": " + m.String()
		}
		return infra.WrapBackendErr(infra.KindRejected, msg, nil)
	}
	return nil
}

func (c *Client) get(ctx context.Context, query url.Values) (string, error) {
	route := query.Get("s")
	req, err := c.newRequest(ctx, http.MethodGet, query, nil)
	if err != nil {
		return "", infra.WrapBackendErr(infra.KindTransport, "build request "+route, err)
	}

	status, body, err := c.send(req)
	if err != nil {
		return "", infra.WrapBackendErr(infra.KindTransport, "GET "+route, err)
	}
	if status != http.StatusOK {
		return "", infra.WrapBackendErr(infra.KindTransport,
			fmt.Sprintf("GET %s: HTTP %d", route, status), nil)
	}
	return body, nil
}

func (c *Client) newRequest(ctx context.Context, method string, query url.Values, body io.Reader) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Referer", c.referer)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) send(req *http.Request) (int, string, error) {
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, "", err
	}
	c.logger.Debug("backend call", "method", req.Method, "route", req.URL.Query().Get("s"),
		"status", resp.StatusCode, "duration", time.Since(started))
	return resp.StatusCode, string(raw), nil
}
