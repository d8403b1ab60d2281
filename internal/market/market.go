// Package market считает производную рыночную статистику для результата оценки.
package market

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iudanet/carscope/internal/models"
)

const (
	// AnnualRateMin нижняя граница типичной годовой потери стоимости
	AnnualRateMin = 0.12
	// AnnualRateMax верхняя граница типичной годовой потери стоимости
	AnnualRateMax = 0.15
	// NextYearFactor доля цены, остающаяся через год
	NextYearFactor = 0.87
	// MileagePerYear ожидаемый пробег за год, км
	MileagePerYear = 12000
)

// Impact значения ValueFactor.Impact
const (
	ImpactPositive = "Positive"
	ImpactPremium  = "Premium"
	ImpactStandard = "Standard"
)

// Bucket ценовой диапазон [Min, Max)
type Bucket struct {
	Min float64
	Max float64
}

// Buckets диапазоны распределения цен, те же, что использует backend
var Buckets = []Bucket{
	{0, 5000},
	{5000, 10000},
	{10000, 15000},
	{15000, 20000},
	{20000, 30000},
	{30000, 50000},
	{50000, 100000},
	{100000, math.Inf(1)},
}

var printer = message.NewPrinter(language.English)

// Label подпись диапазона: "€5,000 - €10,000" или "€100,000+"
func (b Bucket) Label() string {
	if math.IsInf(b.Max, 1) {
		return printer.Sprintf("€%d+", int64(b.Min))
	}
	return printer.Sprintf("€%d - €%d", int64(b.Min), int64(b.Max))
}

// Contains сообщает, попадает ли цена в диапазон
func (b Bucket) Contains(price float64) bool {
	return price >= b.Min && price < b.Max
}

// FormatEUR форматирует сумму с разделителями разрядов: €12,345
func FormatEUR(v float64) string {
	return printer.Sprintf("€%d", int64(math.Round(v)))
}

// Distribution раскладывает цены по Buckets.
// Пустые диапазоны и неположительные цены пропускаются, доля округляется до 0.1%.
func Distribution(prices []float64) []models.PriceBucket {
	valid := make([]float64, 0, len(prices))
	for _, p := range prices {
		if p > 0 {
			valid = append(valid, p)
		}
	}

	out := []models.PriceBucket{}
	if len(valid) == 0 {
		return out
	}

	for _, b := range Buckets {
		count := 0
		for _, p := range valid {
			if b.Contains(p) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		out = append(out, models.PriceBucket{
			Range:      b.Label(),
			Count:      count,
			Percentage: round(float64(count)/float64(len(valid))*100, 1),
		})
	}
	return out
}

// Range возвращает min/max/avg цен, округленные до центов
func Range(prices []float64) models.PriceRange {
	if len(prices) == 0 {
		return models.PriceRange{}
	}
	r := models.PriceRange{Min: prices[0], Max: prices[0]}
	sum := 0.0
	for _, p := range prices {
		r.Min = math.Min(r.Min, p)
		r.Max = math.Max(r.Max, p)
		sum += p
	}
	r.Avg = round(sum/float64(len(prices)), 2)
	r.Min = round(r.Min, 2)
	r.Max = round(r.Max, 2)
	return r
}

// Derive считает статистику для автомобиля car и результата оценки result на момент now.
func Derive(car models.CarData, result models.EstimationResult, now time.Time) *models.MarketStats {
	age := max(now.Year()-car.Year, 0)
	expected := age * MileagePerYear

	prices := make([]float64, 0, len(result.SimilarCarsSample))
	for _, c := range result.SimilarCarsSample {
		if c.Price > 0 {
			prices = append(prices, c.Price)
		}
	}

	return &models.MarketStats{
		Depreciation: models.Depreciation{
			AgeYears:            age,
			AnnualRateMin:       AnnualRateMin,
			AnnualRateMax:       AnnualRateMax,
			NextYearValue:       math.Round(result.EstimatedPrice * NextYearFactor),
			ExpectedMileage:     expected,
			MileageBelowTypical: car.Mileage < expected,
		},
		ValueFactors:       valueFactors(car, expected),
		SampleDistribution: Distribution(prices),
		SampleRange:        Range(prices),
	}
}

func valueFactors(car models.CarData, expectedMileage int) []models.ValueFactor {
	factor := func(name string, ok bool, impact string) models.ValueFactor {
		if !ok {
			impact = ImpactStandard
		}
		return models.ValueFactor{Factor: name, Impact: impact, Positive: ok}
	}

	return []models.ValueFactor{
		factor("Mileage", car.Mileage < expectedMileage, ImpactPositive),
		factor("Fuel Type", car.FuelType == "Electric" || car.FuelType == "Hybrid", ImpactPremium),
		factor("Transmission", car.Transmission == "Automatic", ImpactPremium),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
