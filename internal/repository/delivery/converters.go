package delivery

import "quickparcel/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	delivery := &entities.Delivery{
		ID:              d.ID,
		SenderName:      d.SenderName,
		SenderAddress:   d.SenderAddress,
		SenderEmail:     d.SenderEmail,
		ReceiverName:    d.ReceiverName,
		ReceiverAddress: d.ReceiverAddress,
		ReceiverPhone:   d.ReceiverPhone,
		ParcelType:      d.ParcelType,
		Weight:          d.Weight,
		Status:          entities.DeliveryStatusType(d.Status),
		PartnerID:       d.PartnerID,
		TotalStops:      d.TotalStops,
		TotalAmount:     d.TotalAmount,
		PaymentStatus:   entities.PaymentStatusType(d.PaymentStatus),
		CreatedAt:       d.CreatedAt,
		AcceptedAt:      d.AcceptedAt,
		UpdatedAt:       d.UpdatedAt,
		DeliveredAt:     d.DeliveredAt,
	}
	if d.PaymentMethod != nil {
		method := entities.PaymentMethodType(*d.PaymentMethod)
		delivery.PaymentMethod = &method
	}

	return delivery
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	if len(deliveriesDB) == 0 {
		return []entities.Delivery{}
	}

	result := make([]entities.Delivery, len(deliveriesDB))
	for i, deliveryDB := range deliveriesDB {
		result[i] = *ToDomain(&deliveryDB)
	}
	return result
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{
		PartnerID:   d.PartnerID,
		TotalAmount: d.TotalAmount,
		AcceptedAt:  d.AcceptedAt,
		UpdatedAt:   d.UpdatedAt,
		DeliveredAt: d.DeliveredAt,
	}

	if d.Status != nil {
		status := d.Status.String()
		deliveryModifyDB.Status = &status
	}
	if d.PaymentStatus != nil {
		paymentStatus := d.PaymentStatus.String()
		deliveryModifyDB.PaymentStatus = &paymentStatus
	}
	if d.PaymentMethod != nil {
		paymentMethod := d.PaymentMethod.String()
		deliveryModifyDB.PaymentMethod = &paymentMethod
	}

	return deliveryModifyDB
}

func StopToDomain(s *StopDB) entities.DeliveryStop {
	return entities.DeliveryStop{
		ID:            s.ID,
		DeliveryID:    s.DeliveryID,
		StopNumber:    s.StopNumber,
		DropAddress:   s.DropAddress,
		ReceiverName:  s.ReceiverName,
		ReceiverPhone: s.ReceiverPhone,
		Status:        entities.StopStatusType(s.Status),
		DeliveredAt:   s.DeliveredAt,
	}
}
