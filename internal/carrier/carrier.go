package carrier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/tracing"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrShipmentNotFound = errors.New("shipment not found at carrier")

// Client reads tracking state from the Shiprocket API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.Carrier) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.APIToken,
		http:    tracing.NewHTTPClient(cfg.Timeout),
	}
}

type trackResponse struct {
	TrackingData struct {
		TrackStatus   int    `json:"track_status"`
		ETD           string `json:"etd"`
		Error         string `json:"error"`
		ShipmentTrack []struct {
			AWBCode       string `json:"awb_code"`
			CourierName   string `json:"courier_name"`
			CurrentStatus string `json:"current_status"`
			EDD           string `json:"edd"`
		} `json:"shipment_track"`
	} `json:"tracking_data"`
}

func (c *Client) TrackByAWB(ctx context.Context, awb string) (entities.Tracking, error) {
	ctx, span := tracing.Tracer("carrier").Start(ctx, "carrier.TrackByAWB")
	defer span.End()
	span.SetAttributes(attribute.String("carrier.awb", awb))

	tracking, err := c.track(ctx, awb)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return tracking, err
}

func (c *Client) track(ctx context.Context, awb string) (entities.Tracking, error) {
	endpoint := fmt.Sprintf("%s/v1/external/courier/track/awb/%s", c.baseURL, url.PathEscape(awb))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Tracking{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.Tracking{}, fmt.Errorf("carrier request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.Tracking{}, fmt.Errorf("failed to read carrier response: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entities.Tracking{}, ErrShipmentNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		return entities.Tracking{}, fmt.Errorf("carrier returned %d", resp.StatusCode)
	}

	var body trackResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return entities.Tracking{}, fmt.Errorf("failed to decode carrier response: %w", err)
	}
	td := body.TrackingData
	if len(td.ShipmentTrack) == 0 {
		if td.Error != "" {
			return entities.Tracking{}, fmt.Errorf("%w: %s", ErrShipmentNotFound, td.Error)
		}
		return entities.Tracking{}, ErrShipmentNotFound
	}

	track := td.ShipmentTrack[0]
	out := entities.Tracking{
		AWB:           awb,
		CourierName:   track.CourierName,
		CurrentStatus: track.CurrentStatus,
		Raw:           json.RawMessage(data),
	}
	if track.AWBCode != "" {
		out.AWB = track.AWBCode
	}

	// edd бывает пустым, тогда берем etd всей отправки
	edd := track.EDD
	if edd == "" {
		edd = td.ETD
	}
	if edd != "" {
		// кривую дату просто пропускаем, статус важнее
		if t, err := utils.ParseTime(edd); err == nil {
			out.ExpectedDelivery = &t
		}
	}
	return out, nil
}
