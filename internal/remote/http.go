package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ivolkoff/shopsync/internal/config"
	"github.com/ivolkoff/shopsync/internal/logger"
	"github.com/ivolkoff/shopsync/models"
)

type httpClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPClient constructs an HTTP/REST implementation of [Client]. It
// normalises and validates the base URL from cfg.BaseURL and configures the
// underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPClient(cfg config.ClientRemote, logger *logger.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchAll implements [Client]. It GETs /items and decodes the response into
// a slice of [models.ShoppingItemDTO].
func (h *httpClient) FetchAll(ctx context.Context) ([]models.ShoppingItemDTO, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/items")
	if err != nil {
		return nil, fmt.Errorf("fetch all request: %w", wrapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.ShoppingItemDTO
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: decode fetch all response: %w", ErrInvalidResponse, err)
	}

	return items, nil
}

// Create implements [Client]. It POSTs the record to /items and returns the
// created record as the server stored it.
func (h *httpClient) Create(ctx context.Context, dto models.ShoppingItemDTO) (models.ShoppingItemDTO, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(dto).
		Post("/items")
	if err != nil {
		return models.ShoppingItemDTO{}, fmt.Errorf("create request: %w", wrapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShoppingItemDTO{}, err
	}

	var created models.ShoppingItemDTO
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.ShoppingItemDTO{}, fmt.Errorf("%w: decode create response: %w", ErrInvalidResponse, err)
	}

	return created, nil
}

// Update implements [Client]. It PUTs the record to /items/{id} and returns
// the updated record.
func (h *httpClient) Update(ctx context.Context, dto models.ShoppingItemDTO) (models.ShoppingItemDTO, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(dto).
		Put("/items/" + url.PathEscape(dto.ID))
	if err != nil {
		return models.ShoppingItemDTO{}, fmt.Errorf("update request: %w", wrapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShoppingItemDTO{}, err
	}

	var updated models.ShoppingItemDTO
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.ShoppingItemDTO{}, fmt.Errorf("%w: decode update response: %w", ErrInvalidResponse, err)
	}

	return updated, nil
}

// Delete implements [Client]. It sends DELETE /items/{id}; any 2xx status is
// success.
func (h *httpClient) Delete(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/items/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete request: %w", wrapTransportError(err))
	}

	return mapHTTPError(resp)
}
