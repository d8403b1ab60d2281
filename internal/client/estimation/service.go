// Package estimation запрашивает оценку стоимости автомобиля и сохраняет ее в историю.
package estimation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/carscope/internal/client/session"
	"github.com/iudanet/carscope/internal/market"
	"github.com/iudanet/carscope/internal/models"
	"github.com/iudanet/carscope/internal/validation"
	"github.com/iudanet/carscope/pkg/api"
)

//go:generate moq -out api_mock.go . API
//go:generate moq -out history_mock.go . History

// API вызовы backend для оценки
type API interface {
	EstimatePrice(ctx context.Context, token string, car models.CarData) (*models.EstimationResult, error)
	ModelSpecs(ctx context.Context, brand, model string) (*api.ModelSpecs, error)
}

// Sessions источник текущей сессии
type Sessions interface {
	Current(ctx context.Context) (*session.Session, error)
}

// History куда сохраняются результаты
type History interface {
	Save(ctx context.Context, car models.CarData, result models.EstimationResult, notes string) error
}

// Service оценка стоимости
type Service struct {
	api      API
	sessions Sessions
	history  History
	logger   *slog.Logger
	now      func() time.Time
}

// NewService создает сервис оценки
func NewService(apiClient API, sessions Sessions, history History, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:      apiClient,
		sessions: sessions,
		history:  history,
		logger:   logger,
		now:      time.Now,
	}
}

// Estimate проверяет данные, запрашивает оценку, добавляет производную статистику
// и сохраняет результат в историю. Ошибка сохранения в историю не прерывает оценку.
func (s *Service) Estimate(ctx context.Context, car models.CarData, notes string) (*models.EstimationResult, error) {
	car = validation.NormalizeCarData(car)
	if err := validation.ValidateCarData(car, s.now()); err != nil {
		return nil, fmt.Errorf("invalid car data: %w", err)
	}

	// токен необязателен: анонимная оценка тоже работает
	var token string
	if sess, err := s.sessions.Current(ctx); err == nil {
		token = sess.Token
	}

	result, err := s.api.EstimatePrice(ctx, token, car)
	if err != nil {
		return nil, fmt.Errorf("estimation failed: %w", err)
	}

	result.Derived = market.Derive(car, *result, s.now())

	s.logger.Info("estimation received",
		"brand", car.Brand,
		"model", car.Model,
		"estimated_price", result.EstimatedPrice,
		"confidence", result.ConfidenceLevel,
		"similar_cars", result.SimilarCarsCount)

	if err := s.history.Save(ctx, car, *result, notes); err != nil {
		s.logger.Error("failed to save estimation to history", "error", err)
	}

	return result, nil
}

// Specs возвращает характеристики модели для заполнения формы
func (s *Service) Specs(ctx context.Context, brand, model string) (*api.ModelSpecs, error) {
	specs, err := s.api.ModelSpecs(ctx, brand, model)
	if err != nil {
		return nil, fmt.Errorf("failed to load specs for %s %s: %w", brand, model, err)
	}
	return specs, nil
}

// ApplySpecDefaults подставляет значения полей, у которых в объявлениях модели
// встречается единственный вариант.
func ApplySpecDefaults(car models.CarData, specs *api.ModelSpecs) models.CarData {
	if specs == nil {
		return car
	}
	if len(specs.FuelTypes) == 1 {
		car.FuelType = specs.FuelTypes[0]
	}
	if len(specs.Transmissions) == 1 {
		car.Transmission = specs.Transmissions[0]
	}
	if len(specs.DriveTypes) == 1 {
		car.DriveType = specs.DriveTypes[0]
	}
	if len(specs.EngineCapacities) == 1 {
		car.EngineCapacity = specs.EngineCapacities[0]
	}
	return car
}
