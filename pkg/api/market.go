package api

import "github.com/iudanet/carscope/internal/models"

// FavoriteRequest тело POST /favorites
type FavoriteRequest struct {
	UserID int64 `json:"user_id"`
	CarID  int64 `json:"car_id"`
}

// SavedSearchRequest тело POST /saved-searches
type SavedSearchRequest struct {
	Query  string `json:"query"`
	UserID int64  `json:"user_id"`
}

// CarListing объявление о продаже в ответах сервера
type CarListing struct {
	Year         *int    `json:"year"`
	Mileage      *int    `json:"mileage"`
	FuelType     *string `json:"fuel_type"`
	Transmission *string `json:"transmission"`
	Location     *string `json:"location"`
	Title        string  `json:"title"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Price        float64 `json:"price"`
	ID           int64   `json:"id"`
}

// Favorite запись избранного из GET /favorites/{user_id}
type Favorite struct {
	Car    CarListing `json:"car"`
	ID     int64      `json:"id"`
	UserID int64      `json:"user_id"`
}

// SavedSearch сохраненный поиск из GET /saved-searches
type SavedSearch struct {
	Query  string `json:"query"`
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
}

// HistoryCreateRequest тело POST /estimation-history/
type HistoryCreateRequest struct {
	Notes            *string                 `json:"notes"`
	CarData          models.CarData          `json:"car_data"`
	EstimationResult models.EstimationResult `json:"estimation_result"`
	UserID           int64                   `json:"user_id"`
}

// HistoryUpdateRequest тело PUT /estimation-history/{id}
type HistoryUpdateRequest struct {
	Notes string `json:"notes"`
}

// HistoryRecord запись истории в ответе сервера
type HistoryRecord struct {
	Notes            *string                 `json:"notes"`
	CreatedAt        string                  `json:"created_at"`
	CarData          models.CarData          `json:"car_data"`
	EstimationResult models.EstimationResult `json:"estimation_result"`
	ID               int64                   `json:"id"`
	UserID           int64                   `json:"user_id"`
}

// Entry переводит серверную запись в каноническую запись истории
func (r HistoryRecord) Entry() models.HistoryEntry {
	entry := models.HistoryEntry{
		ID:               r.ID,
		CarData:          r.CarData,
		EstimationResult: r.EstimationResult,
		CreatedAt:        r.CreatedAt,
	}
	if r.Notes != nil {
		entry.Notes = *r.Notes
	}
	return entry
}

// YearRange диапазон годов выпуска в объявлениях модели
type YearRange struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// MileageRange типичный пробег модели
type MileageRange struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
	Avg *int `json:"avg"`
}

// ModelSpecs ответ GET /estimation/specs/{brand}/{model}
type ModelSpecs struct {
	YearRange        YearRange    `json:"year_range"`
	TypicalMileage   MileageRange `json:"typical_mileage"`
	FuelTypes        []string     `json:"fuel_types"`
	Transmissions    []string     `json:"transmissions"`
	DriveTypes       []string     `json:"drive_types"`
	EngineCapacities []int        `json:"engine_capacities"`
}
