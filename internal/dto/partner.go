package dto

import (
	"time"

	"quickparcel/internal/entities"
)

type PartnerRegisterRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	VehicleType    string `json:"vehicle_type"`
	VehicleNumber  string `json:"vehicle_number"`
	DocumentNumber string `json:"document_number"`
	Password       string `json:"password"`
}

func (r PartnerRegisterRequest) ToDomain() entities.PartnerCreate {
	return entities.PartnerCreate{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Phone:          r.Phone,
		Email:          r.Email,
		VehicleType:    entities.VehicleType(r.VehicleType),
		VehicleNumber:  r.VehicleNumber,
		DocumentNumber: r.DocumentNumber,
		Password:       r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PartnerStatusRequest struct {
	Status string `json:"status"`
}

// Partner без пароля и номера документа.
type Partner struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	VehicleType   string    `json:"vehicle_type"`
	VehicleNumber string    `json:"vehicle_number"`
	Status        string    `json:"status"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewPartner(p *entities.Partner) Partner {
	return Partner{
		ID:            p.ID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Name:          p.Name(),
		Phone:         p.Phone,
		Email:         p.Email,
		VehicleType:   p.VehicleType.String(),
		VehicleNumber: p.VehicleNumber,
		Status:        p.Status.String(),
		Approved:      p.Approved,
		CreatedAt:     p.CreatedAt,
	}
}

func NewPartnerList(partners []entities.Partner) []Partner {
	res := make([]Partner, 0, len(partners))
	for i := range partners {
		res = append(res, NewPartner(&partners[i]))
	}
	return res
}

type PartnerRegisterResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PartnerID string `json:"partner_id"`
}

type PartnerLoginResponse struct {
	Success   bool    `json:"success"`
	Token     string  `json:"token"`
	ExpiresIn int64   `json:"expires_in"`
	Partner   Partner `json:"partner"`
}

type PartnerStatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
