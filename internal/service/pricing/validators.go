package pricing

import (
	"strings"

	"quickparcel/internal/entities"
)

func validateQuote(req entities.PriceQuoteRequest) error {
	if strings.TrimSpace(req.PickupAddress) == "" {
		return ErrMissingPickup
	}
	if len(req.DropAddresses) == 0 {
		return ErrMissingStops
	}
	for _, address := range req.DropAddresses {
		if strings.TrimSpace(address) == "" {
			return ErrEmptyDropStop
		}
	}
	if req.Weight.IsNegative() {
		return ErrInvalidWeight
	}
	return nil
}
