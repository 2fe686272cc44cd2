package entities

import "github.com/shopspring/decimal"

// PriceBreakdown разбивка стоимости, все суммы округлены до 2 знаков.
type PriceBreakdown struct {
	BaseFare      decimal.Decimal
	Distance      decimal.Decimal
	DistanceCost  decimal.Decimal
	Weight        decimal.Decimal
	WeightCost    decimal.Decimal
	NumStops      int
	ExtraStops    int
	ExtraStopCost decimal.Decimal
	Total         decimal.Decimal
}

type PriceQuoteRequest struct {
	PickupAddress string
	DropAddresses []string
	Weight        decimal.Decimal
}
