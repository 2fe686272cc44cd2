package partner

import "time"

type PartnerDB struct {
	ID             string
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	VehicleType    string
	VehicleNumber  string
	DocumentNumber string
	PasswordHash   string
	Status         string
	Approved       bool
	CreatedAt      time.Time
}

type PartnerModifyDB struct {
	FirstName     *string
	LastName      *string
	Phone         *string
	Status        *string
	VehicleType   *string
	VehicleNumber *string
	Approved      *bool
}
