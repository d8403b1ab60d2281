package cli

import (
	"encoding/json"
	"fmt"

	"github.com/iudanet/carscope/internal/client/estimation"
	"github.com/iudanet/carscope/internal/market"
	"github.com/iudanet/carscope/internal/models"
)

// Execute реализует goflags.Commander
func (e *EstimateCommand) Execute(_ []string) error {
	c := e.cli
	d, err := c.dependencies()
	if err != nil {
		return err
	}
	if e.RightHand && e.LeftHand {
		return fmt.Errorf("--rhd and --lhd are mutually exclusive")
	}

	car := e.carData()
	if e.UseSpecs {
		specs, err := d.estimation.Specs(c.ctx, car.Brand, car.Model)
		if err != nil {
			return err
		}
		car = estimation.ApplySpecDefaults(car, specs)
	}

	result, err := d.estimation.Estimate(c.ctx, car, e.Notes)
	if err != nil {
		return err
	}

	if e.JSON {
		enc := json.NewEncoder(c.io)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	c.printEstimation(car, result)
	return nil
}

func (e *EstimateCommand) carData() models.CarData {
	car := models.CarData{
		Brand:          e.Brand,
		Model:          e.Model,
		Year:           e.Year,
		Mileage:        e.Mileage,
		FuelType:       e.FuelType,
		Transmission:   e.Transmission,
		EngineCapacity: e.Engine,
		DriveType:      e.DriveType,
		Generation:     e.Generation,
	}
	if e.RightHand || e.LeftHand {
		rhd := e.RightHand
		car.RightHandDrive = &rhd
	}
	return car
}

func (c *Cli) printEstimation(car models.CarData, r *models.EstimationResult) {
	c.io.Printf("=== %s %s (%d) ===\n", car.Brand, car.Model, car.Year)
	c.io.Println()
	c.io.Printf("Estimated price: %s\n", market.FormatEUR(r.EstimatedPrice))
	c.io.Printf("Confidence:      %s\n", r.ConfidenceLevel)
	c.io.Printf("Market position: %s\n", r.MarketPosition)
	c.io.Printf("Similar cars:    %d\n", r.SimilarCarsCount)
	c.io.Printf("Price range:     %s - %s (avg %s)\n",
		market.FormatEUR(r.PriceRange.Min), market.FormatEUR(r.PriceRange.Max), market.FormatEUR(r.PriceRange.Avg))

	if len(r.PriceDistribution) > 0 {
		c.io.Println()
		c.io.Println("Price distribution:")
		for _, b := range r.PriceDistribution {
			c.io.Printf("  %-22s %3d  %5.1f%%\n", b.Range, b.Count, b.Percentage)
		}
	}

	stats := r.Derived
	if stats == nil {
		return
	}

	dep := stats.Depreciation
	c.io.Println()
	c.io.Println("Depreciation:")
	c.io.Printf("  Age:             %d years\n", dep.AgeYears)
	c.io.Printf("  Annual rate:     %.0f%% - %.0f%%\n", dep.AnnualRateMin*100, dep.AnnualRateMax*100)
	c.io.Printf("  Next year value: %s\n", market.FormatEUR(dep.NextYearValue))
	c.io.Printf("  Expected mileage: %d km\n", dep.ExpectedMileage)

	c.io.Println()
	c.io.Println("Value factors:")
	for _, f := range stats.ValueFactors {
		mark := "-"
		if f.Positive {
			mark = "+"
		}
		c.io.Printf("  %s %-13s %s\n", mark, f.Factor, f.Impact)
	}
}
