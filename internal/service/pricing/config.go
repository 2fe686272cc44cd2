package pricing

import "github.com/shopspring/decimal"

// Config тарифная сетка. Передаётся в Engine при создании и дальше не меняется.
type Config struct {
	BaseFare        decimal.Decimal
	PricePerKm      decimal.Decimal
	PricePerKg      decimal.Decimal
	ExtraStopCharge decimal.Decimal
	// FallbackLegKm подставляется за участок, если расстояние узнать не удалось.
	FallbackLegKm decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		BaseFare:        decimal.NewFromInt(30),
		PricePerKm:      decimal.NewFromInt(8),
		PricePerKg:      decimal.NewFromInt(5),
		ExtraStopCharge: decimal.NewFromInt(15),
		FallbackLegKm:   decimal.NewFromInt(5),
	}
}

func (c Config) Validate() error {
	for _, v := range []decimal.Decimal{c.BaseFare, c.PricePerKm, c.PricePerKg, c.ExtraStopCharge, c.FallbackLegKm} {
		if v.IsNegative() {
			return ErrNegativeTariff
		}
	}
	return nil
}
