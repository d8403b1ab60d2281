package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iudanet/carscope/internal/models"
)

// MinYear самый ранний год выпуска, который принимает форма
const MinYear = 1950

// NormalizeCarData убирает пробелы и приводит тип топлива и коробку к виду "Diesel", "Automatic"
func NormalizeCarData(car models.CarData) models.CarData {
	// Caser хранит состояние, поэтому новый на каждый вызов
	titleCaser := cases.Title(language.English)
	car.Brand = strings.TrimSpace(car.Brand)
	car.Model = strings.TrimSpace(car.Model)
	car.FuelType = titleCaser.String(strings.TrimSpace(car.FuelType))
	car.Transmission = titleCaser.String(strings.TrimSpace(car.Transmission))
	car.DriveType = strings.TrimSpace(car.DriveType)
	car.Generation = strings.TrimSpace(car.Generation)
	return car
}

// ValidateCarData проверяет, что данных достаточно для оценки.
// now ограничивает год выпуска сверху. Возвращает все найденные ошибки сразу.
func ValidateCarData(car models.CarData, now time.Time) error {
	var errs []error

	if strings.TrimSpace(car.Brand) == "" {
		errs = append(errs, fmt.Errorf("brand is required"))
	}
	if strings.TrimSpace(car.Model) == "" {
		errs = append(errs, fmt.Errorf("model is required"))
	}

	switch {
	case car.Year == 0:
		errs = append(errs, fmt.Errorf("year is required"))
	case car.Year < MinYear:
		errs = append(errs, fmt.Errorf("year must be %d or later", MinYear))
	case car.Year > now.Year():
		errs = append(errs, fmt.Errorf("year %d is in the future", car.Year))
	}

	if car.Mileage < 0 {
		errs = append(errs, fmt.Errorf("mileage cannot be negative"))
	}
	if strings.TrimSpace(car.FuelType) == "" {
		errs = append(errs, fmt.Errorf("fuel type is required"))
	}
	if strings.TrimSpace(car.Transmission) == "" {
		errs = append(errs, fmt.Errorf("transmission is required"))
	}
	if car.EngineCapacity <= 0 {
		errs = append(errs, fmt.Errorf("engine capacity must be positive"))
	}

	return errors.Join(errs...)
}
