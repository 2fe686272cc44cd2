package entities

import (
	"fmt"
	"time"
)

type Partner struct {
	ID             string
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	VehicleType    VehicleType
	VehicleNumber  string
	DocumentNumber string
	PasswordHash   string
	Status         PartnerStatusType
	Approved       bool
	CreatedAt      time.Time
}

func (p *Partner) Name() string {
	return p.FirstName + " " + p.LastName
}

const partnerIDPrefix = "PARTNER"

// NewPartnerID формирует PARTNER + номер из последовательности, минимум 4 цифры.
func NewPartnerID(seq int64) string {
	return fmt.Sprintf("%s%04d", partnerIDPrefix, seq)
}

type VehicleType string

const (
	VehicleBike    VehicleType = "bike"
	VehicleScooter VehicleType = "scooter"
	VehicleCar     VehicleType = "car"
	VehicleVan     VehicleType = "van"
)

func (t VehicleType) String() string {
	return string(t)
}

func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleBike, VehicleScooter, VehicleCar, VehicleVan:
		return true
	}
	return false
}

type PartnerStatusType string

const (
	PartnerOnline  PartnerStatusType = "online"
	PartnerOffline PartnerStatusType = "offline"
)

const DefaultPartnerStatus = PartnerOffline

func (s PartnerStatusType) String() string {
	return string(s)
}

func (s PartnerStatusType) IsValid() bool {
	return s == PartnerOnline || s == PartnerOffline
}

type PartnerCreate struct {
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	VehicleType    VehicleType
	VehicleNumber  string
	DocumentNumber string
	Password       string
}

type PartnerModify struct {
	FirstName     *string
	LastName      *string
	Phone         *string
	Status        *PartnerStatusType
	VehicleType   *VehicleType
	VehicleNumber *string
	Approved      *bool
}
