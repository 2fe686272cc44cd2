package partner

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"quickparcel/internal/entities"
)

const minPasswordLength = 6

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

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

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCreate(create entities.PartnerCreate) error {
	if create.FirstName == "" ||
		create.LastName == "" ||
		create.Phone == "" ||
		create.Email == "" ||
		create.VehicleType == "" ||
		create.VehicleNumber == "" ||
		create.DocumentNumber == "" ||
		create.Password == "" {
		return ErrMissingRequiredFields
	}

	if !isValidName(create.FirstName) || !isValidName(create.LastName) {
		return ErrInvalidName
	}
	if !isValidPhone(create.Phone) {
		return ErrInvalidPhone
	}
	if !isValidEmail(normalizeEmail(create.Email)) {
		return ErrInvalidEmail
	}
	if !create.VehicleType.IsValid() {
		return ErrInvalidVehicle
	}
	if utf8.RuneCountInString(create.Password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}
