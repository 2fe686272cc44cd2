package stats

import (
	"strings"

	"quickparcel/internal/entities"
)

func ToDomain(d *DeliveryOverviewDB) entities.DeliveryOverview {
	overview := entities.DeliveryOverview{
		ID:            d.ID,
		SenderName:    d.SenderName,
		SenderAddress: d.SenderAddress,
		Status:        entities.DeliveryStatusType(d.Status),
		PaymentStatus: entities.PaymentStatusType(d.PaymentStatus),
		TotalStops:    d.TotalStops,
		TotalAmount:   d.TotalAmount,
		CreatedAt:     d.CreatedAt,
		DeliveredAt:   d.DeliveredAt,
	}

	if d.PartnerFirstName != nil {
		name := *d.PartnerFirstName
		if d.PartnerLastName != nil {
			name = strings.TrimSpace(name + " " + *d.PartnerLastName)
		}
		overview.PartnerName = &name
	}

	return overview
}

func ToDomainList(deliveriesDB []DeliveryOverviewDB) []entities.DeliveryOverview {
	result := make([]entities.DeliveryOverview, len(deliveriesDB))
	for i := range deliveriesDB {
		result[i] = ToDomain(&deliveriesDB[i])
	}
	return result
}
