package partner

import (
	"quickparcel/internal/entities"
)

func ToDomain(p *PartnerDB) *entities.Partner {
	if p == nil {
		return nil
	}

	return &entities.Partner{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		Email:          p.Email,
		VehicleType:    entities.VehicleType(p.VehicleType),
		VehicleNumber:  p.VehicleNumber,
		DocumentNumber: p.DocumentNumber,
		PasswordHash:   p.PasswordHash,
		Status:         entities.PartnerStatusType(p.Status),
		Approved:       p.Approved,
		CreatedAt:      p.CreatedAt,
	}
}

func FromDomain(p *entities.Partner) *PartnerDB {
	if p == nil {
		return nil
	}

	return &PartnerDB{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		Email:          p.Email,
		VehicleType:    p.VehicleType.String(),
		VehicleNumber:  p.VehicleNumber,
		DocumentNumber: p.DocumentNumber,
		PasswordHash:   p.PasswordHash,
		Status:         p.Status.String(),
		Approved:       p.Approved,
		CreatedAt:      p.CreatedAt,
	}
}

func FromDomainModify(partnerModify *entities.PartnerModify) *PartnerModifyDB {
	if partnerModify == nil {
		return nil
	}
	partnerDB := &PartnerModifyDB{
		FirstName:     partnerModify.FirstName,
		LastName:      partnerModify.LastName,
		Phone:         partnerModify.Phone,
		VehicleNumber: partnerModify.VehicleNumber,
		Approved:      partnerModify.Approved,
	}

	if partnerModify.Status != nil {
		status := partnerModify.Status.String()
		partnerDB.Status = &status
	}
	if partnerModify.VehicleType != nil {
		vehicleType := partnerModify.VehicleType.String()
		partnerDB.VehicleType = &vehicleType
	}

	return partnerDB
}

func ToDomainList(partnersDB []PartnerDB) []entities.Partner {
	if len(partnersDB) == 0 {
		return []entities.Partner{}
	}

	result := make([]entities.Partner, len(partnersDB))
	for i, partnerDB := range partnersDB {
		result[i] = *ToDomain(&partnerDB)
	}
	return result
}
