package models

// CarData описывает автомобиль, для которого запрашивается оценка стоимости.
// Поля соответствуют форме оценки и телу запроса POST /estimation/estimate-price.
type CarData struct {
	RightHandDrive *bool  `json:"right_hand_drive,omitempty"` // RightHandDrive правый руль (nil - не указано)
	Brand          string `json:"brand"`                      // Brand марка (например, "BMW")
	Model          string `json:"model"`                      // Model модель (например, "X5")
	FuelType       string `json:"fuel_type"`                  // FuelType тип топлива ("Diesel", "Petrol", "Hybrid", "Electric")
	Transmission   string `json:"transmission"`               // Transmission коробка передач ("Manual", "Automatic")
	DriveType      string `json:"drive_type,omitempty"`       // DriveType привод (опционально)
	Generation     string `json:"generation,omitempty"`       // Generation поколение модели (опционально)
	Year           int    `json:"year"`                       // Year год выпуска
	Mileage        int    `json:"mileage"`                    // Mileage пробег в километрах
	EngineCapacity int    `json:"engine_capacity"`            // EngineCapacity объем двигателя в см3
}

// PriceRange минимальная, максимальная и средняя цена похожих автомобилей.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// MarketComparison сравнение оценки с рынком похожих объявлений.
type MarketComparison struct {
	YourEstimatedRank    string  `json:"your_estimated_rank"` // например, "50th percentile"
	TotalSimilarCars     int     `json:"total_similar_cars"`
	PriceVariance        float64 `json:"price_variance"`
	CheapestSimilar      float64 `json:"cheapest_similar"`
	MostExpensiveSimilar float64 `json:"most_expensive_similar"`
	SavingsVsHighest     float64 `json:"savings_vs_highest"`
	PremiumVsLowest      float64 `json:"premium_vs_lowest"`
}

// PriceBucket один столбец распределения цен.
type PriceBucket struct {
	Range      string  `json:"range"` // Range подпись диапазона, например "€5,000 - €10,000"
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // Percentage доля в процентах, округленная до 0.1
}

// SimilarCar объявление из выборки похожих автомобилей.
type SimilarCar struct {
	EstimatedPrice *float64 `json:"estimated_price,omitempty"`
	Sold           *bool    `json:"sold,omitempty"`
	Title          string   `json:"title"`
	FuelType       string   `json:"fuel_type"`
	Transmission   string   `json:"transmission"`
	Location       string   `json:"location"`
	SourceURL      string   `json:"source_url,omitempty"`
	Images         string   `json:"images,omitempty"`
	DealRating     string   `json:"deal_rating,omitempty"`
	ID             int64    `json:"id"`
	Year           int      `json:"year"`
	Mileage        int      `json:"mileage"`
	Price          float64  `json:"price"`
	EngineCapacity int      `json:"engine_capacity"`
}

// EstimationResult полный результат оценки.
// Сохраняется в истории как есть и никогда не пересчитывается.
type EstimationResult struct {
	Derived           *MarketStats     `json:"derived,omitempty"` // Derived вычисляется на клиенте один раз (см. market.Derive)
	ConfidenceLevel   string           `json:"confidence_level"`  // "High", "Medium", "Low"
	MarketPosition    string           `json:"market_position"`   // "Below Average", "Average", "Above Average"
	PriceDistribution []PriceBucket    `json:"price_distribution"`
	SimilarCarsSample []SimilarCar     `json:"similar_cars_sample"`
	MarketComparison  MarketComparison `json:"market_comparison"`
	PriceRange        PriceRange       `json:"price_range"`
	EstimatedPrice    float64          `json:"estimated_price"`
	SimilarCarsCount  int              `json:"similar_cars_count"`
}

// MarketStats производная рыночная статистика для отображения.
// Вычисляется один раз для результата оценки и дальше не меняется.
type MarketStats struct {
	ValueFactors       []ValueFactor `json:"value_factors"`
	SampleDistribution []PriceBucket `json:"sample_distribution"`
	Depreciation       Depreciation  `json:"depreciation"`
	SampleRange        PriceRange    `json:"sample_range"`
}

// Depreciation прогноз потери стоимости.
type Depreciation struct {
	AgeYears            int     `json:"age_years"`
	AnnualRateMin       float64 `json:"annual_rate_min"` // доля, например 0.12
	AnnualRateMax       float64 `json:"annual_rate_max"`
	NextYearValue       float64 `json:"next_year_value"`
	ExpectedMileage     int     `json:"expected_mileage"` // ожидаемый пробег для возраста
	MileageBelowTypical bool    `json:"mileage_below_typical"`
}

// ValueFactor фактор, влияющий на стоимость (пробег, топливо, коробка).
type ValueFactor struct {
	Factor   string `json:"factor"`
	Impact   string `json:"impact"` // "Positive", "Premium" или "Standard"
	Positive bool   `json:"positive"`
}
