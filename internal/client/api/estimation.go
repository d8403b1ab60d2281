package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/carscope/internal/models"
	"github.com/iudanet/carscope/pkg/api"
)

// EstimatePrice запрашивает оценку стоимости автомобиля.
// token не обязателен: без него сервер не пишет оценку в историю сам.
func (c *Client) EstimatePrice(ctx context.Context, token string, car models.CarData) (*models.EstimationResult, error) {
	var result models.EstimationResult
	if err := c.doRequest(ctx, http.MethodPost, "/estimation/estimate-price", token, car, &result); err != nil {
		return nil, fmt.Errorf("estimate price request failed: %w", err)
	}
	return &result, nil
}

// ModelSpecs возвращает доступные характеристики модели
func (c *Client) ModelSpecs(ctx context.Context, brand, model string) (*api.ModelSpecs, error) {
	path := fmt.Sprintf("/estimation/specs/%s/%s", url.PathEscape(brand), url.PathEscape(model))

	var specs api.ModelSpecs
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &specs); err != nil {
		return nil, fmt.Errorf("model specs request failed: %w", err)
	}
	return &specs, nil
}
