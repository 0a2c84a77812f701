package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/jsamuelsen/ecotips/internal/adapters/clients"
	"github.com/jsamuelsen/ecotips/internal/domain"
	"github.com/jsamuelsen/ecotips/internal/platform/logging"
)

const (
	tipsPath = "/api/v1/tips"
	livePath = "/-/live"
)

// TipClientConfig contains the dependencies of a TipClient.
type TipClientConfig struct {
	// Client must point at the tips API base URL.
	Client *clients.Client

	Logger *slog.Logger
}

// TipClient implements ports.TipCatalog against the tips API.
type TipClient struct {
	client *clients.Client
	logger *slog.Logger
}

// NewTipClient creates a TipClient. It panics if cfg.Client is nil.
func NewTipClient(cfg TipClientConfig) *TipClient {
	if cfg.Client == nil {
		panic("acl: NewTipClient requires a Client")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TipClient{
		client: cfg.Client,
		logger: logger.With(slog.String("component", "acl.TipClient")),
	}
}

// ListTips fetches the full collection.
func (c *TipClient) ListTips(ctx context.Context) ([]domain.Tip, error) {
	return c.list(ctx, tipsPath, "list tips")
}

// ListByCategory fetches the tips of one category. The server normalizes it.
func (c *TipClient) ListByCategory(ctx context.Context, category string) ([]domain.Tip, error) {
	return c.list(ctx, tipsPath+"/category/"+url.PathEscape(category), "list tips by category")
}

// GetTip fetches a single tip. An unknown id yields a *domain.NotFoundError.
func (c *TipClient) GetTip(ctx context.Context, id int) (domain.Tip, error) {
	path := tipsPath + "/" + strconv.Itoa(id)
	c.logger.Log(ctx, logging.LevelTrace, "fetching tip", slog.String("path", path))

	var ext externalTip
	if err := c.client.GetJSON(ctx, path, &ext); err != nil {
		return domain.Tip{}, MapError(err, c.client.ServiceName(), "get tip", strconv.Itoa(id))
	}

	tip, err := translateTip(&ext)
	if err != nil {
		c.logger.WarnContext(ctx, "tips API returned an invalid tip",
			slog.Int("tip_id", id),
			slog.Any("error", err),
		)

		return domain.Tip{}, fmt.Errorf("get tip %d: %w", id, err)
	}

	return tip, nil
}

func (c *TipClient) list(ctx context.Context, path, operation string) ([]domain.Tip, error) {
	c.logger.Log(ctx, logging.LevelTrace, "fetching tips", slog.String("path", path))

	var ext []externalTip
	if err := c.client.GetJSON(ctx, path, &ext); err != nil {
		return nil, MapError(err, c.client.ServiceName(), operation, "")
	}

	tips, err := TranslateSlice(ext, translateTip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	c.logger.DebugContext(ctx, "tips fetched",
		slog.String("path", path),
		slog.Int("count", len(tips)),
	)

	return tips, nil
}

// Name identifies the check in health results.
func (c *TipClient) Name() string {
	return c.client.ServiceName()
}

// Check probes the API's liveness endpoint.
func (c *TipClient) Check(ctx context.Context) error {
	var body struct {
		Status string `json:"status"`
	}

	if err := c.client.GetJSON(ctx, livePath, &body); err != nil {
		return MapError(err, c.client.ServiceName(), "health check", "")
	}

	if body.Status != "ok" {
		return domain.NewUnavailableError(c.client.ServiceName(), "unexpected status "+strconv.Quote(body.Status))
	}

	return nil
}
