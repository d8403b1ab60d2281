package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iudanet/carscope/pkg/api"
)

// AddFavorite добавляет автомобиль в избранное
func (c *Client) AddFavorite(ctx context.Context, token string, userID, carID int64) error {
	req := api.FavoriteRequest{UserID: userID, CarID: carID}
	if err := c.doRequest(ctx, http.MethodPost, "/favorites", token, req, nil); err != nil {
		return fmt.Errorf("add favorite request failed: %w", err)
	}
	return nil
}

// RemoveFavorite убирает автомобиль из избранного
func (c *Client) RemoveFavorite(ctx context.Context, token string, carID int64) error {
	path := fmt.Sprintf("/favorites/%d", carID)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("remove favorite request failed: %w", err)
	}
	return nil
}

// SaveSearch сохраняет поисковый запрос пользователя
func (c *Client) SaveSearch(ctx context.Context, token string, userID int64, query string) error {
	req := api.SavedSearchRequest{UserID: userID, Query: query}
	if err := c.doRequest(ctx, http.MethodPost, "/saved-searches", token, req, nil); err != nil {
		return fmt.Errorf("save search request failed: %w", err)
	}
	return nil
}

// ListFavorites возвращает избранные автомобили пользователя
func (c *Client) ListFavorites(ctx context.Context, token string, userID int64) ([]api.Favorite, error) {
	var favorites []api.Favorite
	path := fmt.Sprintf("/favorites/%d", userID)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &favorites); err != nil {
		return nil, fmt.Errorf("list favorites request failed: %w", err)
	}
	return favorites, nil
}

// ListSavedSearches возвращает сохраненные поиски пользователя
func (c *Client) ListSavedSearches(ctx context.Context, token string, userID int64) ([]api.SavedSearch, error) {
	var searches []api.SavedSearch
	path := "/saved-searches?" + url.Values{"user_id": {strconv.FormatInt(userID, 10)}}.Encode()
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &searches); err != nil {
		return nil, fmt.Errorf("list saved searches request failed: %w", err)
	}
	return searches, nil
}

// DeleteSavedSearch удаляет сохраненный поиск
func (c *Client) DeleteSavedSearch(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/saved-searches/%d", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete saved search request failed: %w", err)
	}
	return nil
}
