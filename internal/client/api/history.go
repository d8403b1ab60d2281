package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/carscope/pkg/api"
)

const historyPath = "/estimation-history/"

// ListHistory возвращает историю оценок пользователя
func (c *Client) ListHistory(ctx context.Context, token string) ([]api.HistoryRecord, error) {
	var records []api.HistoryRecord
	if err := c.doRequest(ctx, http.MethodGet, historyPath, token, nil, &records); err != nil {
		return nil, fmt.Errorf("list history request failed: %w", err)
	}
	return records, nil
}

// CreateHistory сохраняет оценку в истории на сервере
func (c *Client) CreateHistory(ctx context.Context, token string, req api.HistoryCreateRequest) (*api.HistoryRecord, error) {
	var record api.HistoryRecord
	if err := c.doRequest(ctx, http.MethodPost, historyPath, token, req, &record); err != nil {
		return nil, fmt.Errorf("create history request failed: %w", err)
	}
	return &record, nil
}

// UpdateHistoryNotes обновляет заметку к записи истории
func (c *Client) UpdateHistoryNotes(ctx context.Context, token string, id int64, notes string) error {
	path := fmt.Sprintf("%s%d", historyPath, id)
	req := api.HistoryUpdateRequest{Notes: notes}
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, nil); err != nil {
		return fmt.Errorf("update history request failed: %w", err)
	}
	return nil
}

// DeleteHistory удаляет одну запись истории
func (c *Client) DeleteHistory(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("%s%d", historyPath, id)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete history request failed: %w", err)
	}
	return nil
}

// ClearHistory удаляет всю историю пользователя
func (c *Client) ClearHistory(ctx context.Context, token string) error {
	if err := c.doRequest(ctx, http.MethodDelete, historyPath, token, nil, nil); err != nil {
		return fmt.Errorf("clear history request failed: %w", err)
	}
	return nil
}
