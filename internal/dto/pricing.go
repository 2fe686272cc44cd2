package dto

import (
	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
)

type PriceQuoteRequest struct {
	PickupAddress string          `json:"pickup_address"`
	Stops         []string        `json:"stops"`
	Weight        decimal.Decimal `json:"weight"`
}

func (r PriceQuoteRequest) ToDomain() entities.PriceQuoteRequest {
	return entities.PriceQuoteRequest{
		PickupAddress: r.PickupAddress,
		DropAddresses: r.Stops,
		Weight:        r.Weight,
	}
}

type PriceBreakdown struct {
	BaseFare      decimal.Decimal `json:"base_fare"`
	Distance      decimal.Decimal `json:"distance"`
	DistanceCost  decimal.Decimal `json:"distance_cost"`
	Weight        decimal.Decimal `json:"weight"`
	WeightCost    decimal.Decimal `json:"weight_cost"`
	NumStops      int             `json:"num_stops"`
	ExtraStops    int             `json:"extra_stops"`
	ExtraStopCost decimal.Decimal `json:"extra_stop_cost"`
	Total         decimal.Decimal `json:"total"`
}

func NewPriceBreakdown(b *entities.PriceBreakdown) PriceBreakdown {
	return PriceBreakdown{
		BaseFare:      b.BaseFare,
		Distance:      b.Distance,
		DistanceCost:  b.DistanceCost,
		Weight:        b.Weight,
		WeightCost:    b.WeightCost,
		NumStops:      b.NumStops,
		ExtraStops:    b.ExtraStops,
		ExtraStopCost: b.ExtraStopCost,
		Total:         b.Total,
	}
}

type PriceQuoteResponse struct {
	Success        bool           `json:"success"`
	PriceBreakdown PriceBreakdown `json:"price_breakdown"`
}
