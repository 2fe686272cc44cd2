package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
)

const moneyPlaces = 2

type Engine struct {
	config    Config
	estimator DistanceEstimator
}

// New без estimator каждый участок считается по FallbackLegKm.
func New(config Config, estimator DistanceEstimator) *Engine {
	return &Engine{
		config:    config,
		estimator: estimator,
	}
}

// CalculatePrice чистая функция тарифа:
// round(base + distance*perKm + weight*perKg + max(0, stops-1)*extraStop, 2).
// Итог округляется один раз от точной суммы, слагаемые в разбивке округлены только для показа
// и могут не сходиться с итогом на копейку.
func (e *Engine) CalculatePrice(distance, weight decimal.Decimal, stops int) entities.PriceBreakdown {
	extraStops := stops - 1
	if extraStops < 0 {
		extraStops = 0
	}

	distanceCost := distance.Mul(e.config.PricePerKm)
	weightCost := weight.Mul(e.config.PricePerKg)
	extraStopCost := e.config.ExtraStopCharge.Mul(decimal.NewFromInt(int64(extraStops)))

	total := e.config.BaseFare.Add(distanceCost).Add(weightCost).Add(extraStopCost).Round(moneyPlaces)

	return entities.PriceBreakdown{
		BaseFare:      e.config.BaseFare.Round(moneyPlaces),
		Distance:      distance.Round(moneyPlaces),
		DistanceCost:  distanceCost.Round(moneyPlaces),
		Weight:        weight.Round(moneyPlaces),
		WeightCost:    weightCost.Round(moneyPlaces),
		NumStops:      stops,
		ExtraStops:    extraStops,
		ExtraStopCost: extraStopCost.Round(moneyPlaces),
		Total:         total,
	}
}

// TotalDistance сумма участков pickup->drop1->drop2->...
// Участок, по которому estimator не ответил, считается как FallbackLegKm.
func (e *Engine) TotalDistance(ctx context.Context, pickup string, drops []string) decimal.Decimal {
	total := decimal.Zero
	origin := pickup
	for _, drop := range drops {
		total = total.Add(e.legDistance(ctx, origin, drop))
		origin = drop
	}
	return total.Round(moneyPlaces)
}

func (e *Engine) Quote(ctx context.Context, req entities.PriceQuoteRequest) (*entities.PriceBreakdown, error) {
	if err := validateQuote(req); err != nil {
		return nil, fmt.Errorf("validate quote: %w", err)
	}

	distance := e.TotalDistance(ctx, req.PickupAddress, req.DropAddresses)
	breakdown := e.CalculatePrice(distance, req.Weight, len(req.DropAddresses))
	return &breakdown, nil
}

func (e *Engine) legDistance(ctx context.Context, origin, destination string) decimal.Decimal {
	if e.estimator == nil {
		return e.config.FallbackLegKm
	}

	km, err := e.estimator.DistanceKm(ctx, origin, destination)
	if err != nil || km < 0 {
		return e.config.FallbackLegKm
	}
	return decimal.NewFromFloat(km).Round(moneyPlaces)
}
