package delivery

import (
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
)

const (
	maxStops     = 20
	// точность колонки deliveries.weight
	weightPlaces = 2
)

func isValidDeliveryID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidPhone допускает ведущий + и от 10 до 15 цифр.
func isValidPhone(phone string) bool {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	if len(phone) < 10 || len(phone) > 15 {
		return false
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidEmail(email string) bool {
	address, err := mail.ParseAddress(email)
	return err == nil && address.Address == email
}

func validateCreate(create entities.DeliveryCreate) error {
	if create.SenderName == "" ||
		create.SenderAddress == "" ||
		create.ParcelType == "" ||
		len(create.Stops) == 0 {
		return ErrMissingRequiredFields
	}

	if !isValidName(create.SenderName) {
		return ErrInvalidName
	}
	if strings.TrimSpace(create.SenderAddress) == "" {
		return ErrInvalidAddress
	}
	if create.SenderEmail != nil && !isValidEmail(*create.SenderEmail) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(create.ParcelType) == "" {
		return ErrInvalidParcelType
	}
	if create.Weight.IsNegative() {
		return ErrInvalidWeight
	}
	if len(create.Stops) > maxStops {
		return ErrTooManyStops
	}

	for _, stop := range create.Stops {
		if strings.TrimSpace(stop.DropAddress) == "" {
			return ErrInvalidAddress
		}
		if !isValidName(stop.ReceiverName) {
			return ErrInvalidName
		}
		if !isValidPhone(stop.ReceiverPhone) {
			return ErrInvalidPhone
		}
	}
	return nil
}

// roundWeight приводит вес к точности хранения, тариф считается уже от него.
func roundWeight(weight decimal.Decimal) decimal.Decimal {
	rounded := weight.Round(weightPlaces)
	if rounded.Equal(weight) {
		return weight
	}
	return rounded
}
