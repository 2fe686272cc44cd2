package delivery_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
	"quickparcel/internal/service/delivery"
)

// memoryRepository хранилище в памяти с атомарным UpdateIf, для сценарных тестов.
type memoryRepository struct {
	mu         sync.Mutex
	seq        int64
	deliveries map[string]entities.Delivery
	stops      map[string][]entities.DeliveryStop
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		deliveries: make(map[string]entities.Delivery),
		stops:      make(map[string][]entities.DeliveryStop),
	}
}

func (r *memoryRepository) Create(_ context.Context, create entities.DeliveryCreate, totalAmount decimal.Decimal) (*entities.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	first := create.Stops[0]
	d := entities.Delivery{
		ID:              entities.NewDeliveryID(r.seq),
		SenderName:      create.SenderName,
		SenderAddress:   create.SenderAddress,
		SenderEmail:     create.SenderEmail,
		ReceiverName:    first.ReceiverName,
		ReceiverAddress: first.DropAddress,
		ReceiverPhone:   first.ReceiverPhone,
		ParcelType:      create.ParcelType,
		Weight:          create.Weight,
		Status:          entities.DeliveryAvailable,
		TotalStops:      len(create.Stops),
		TotalAmount:     totalAmount,
		PaymentStatus:   entities.PaymentPending,
		CreatedAt:       time.Now().UTC(),
	}
	r.deliveries[d.ID] = d
	return &d, nil
}

func (r *memoryRepository) CreateStops(_ context.Context, deliveryID string, stops []entities.StopCreate) ([]entities.DeliveryStop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := make([]entities.DeliveryStop, 0, len(stops))
	for i, stop := range stops {
		created = append(created, entities.DeliveryStop{
			ID:            int64(i + 1),
			DeliveryID:    deliveryID,
			StopNumber:    i + 1,
			DropAddress:   stop.DropAddress,
			ReceiverName:  stop.ReceiverName,
			ReceiverPhone: stop.ReceiverPhone,
			Status:        entities.StopPending,
		})
	}
	r.stops[deliveryID] = created
	return slices.Clone(created), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*entities.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.deliveries[id]
	if !ok {
		return nil, delivery.ErrDeliveryNotFound
	}
	return &d, nil
}

func (r *memoryRepository) GetByPartnerID(_ context.Context, partnerID string) ([]entities.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []entities.Delivery
	for _, d := range r.deliveries {
		if d.AssignedTo(partnerID) {
			result = append(result, d)
		}
	}
	return result, nil
}

func (r *memoryRepository) GetAvailable(_ context.Context) ([]entities.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []entities.Delivery
	for _, d := range r.deliveries {
		if d.Status == entities.DeliveryAvailable {
			result = append(result, d)
		}
	}
	return result, nil
}

func (r *memoryRepository) GetStops(_ context.Context, deliveryIDs []string) (map[string][]entities.DeliveryStop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[string][]entities.DeliveryStop, len(deliveryIDs))
	for _, id := range deliveryIDs {
		if stops, ok := r.stops[id]; ok {
			result[id] = slices.Clone(stops)
		}
	}
	return result, nil
}

func (r *memoryRepository) UpdateIf(
	_ context.Context,
	id string,
	condition entities.DeliveryCondition,
	modify entities.DeliveryModify,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.deliveries[id]
	if !ok {
		return false, nil
	}
	if len(condition.Status) > 0 && !slices.Contains(condition.Status, d.Status) {
		return false, nil
	}
	if len(condition.PaymentStatus) > 0 && !slices.Contains(condition.PaymentStatus, d.PaymentStatus) {
		return false, nil
	}
	if condition.PartnerID != nil && !d.AssignedTo(*condition.PartnerID) {
		return false, nil
	}
	if condition.PaymentMethod != nil && (d.PaymentMethod == nil || *d.PaymentMethod != *condition.PaymentMethod) {
		return false, nil
	}

	if modify.Status != nil {
		d.Status = *modify.Status
	}
	if modify.PartnerID != nil {
		d.PartnerID = modify.PartnerID
	}
	if modify.TotalAmount != nil {
		d.TotalAmount = *modify.TotalAmount
	}
	if modify.PaymentStatus != nil {
		d.PaymentStatus = *modify.PaymentStatus
	}
	if modify.PaymentMethod != nil {
		d.PaymentMethod = modify.PaymentMethod
	}
	if modify.AcceptedAt != nil {
		d.AcceptedAt = modify.AcceptedAt
	}
	if modify.UpdatedAt != nil {
		d.UpdatedAt = modify.UpdatedAt
	}
	if modify.DeliveredAt != nil {
		d.DeliveredAt = modify.DeliveredAt
	}
	r.deliveries[id] = d
	return true, nil
}

func (r *memoryRepository) MarkStopDelivered(_ context.Context, deliveryID string, stopNumber int, deliveredAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stops := r.stops[deliveryID]
	for i := range stops {
		if stops[i].StopNumber != stopNumber {
			continue
		}
		if stops[i].Status == entities.StopDelivered {
			return delivery.ErrStopAlreadyDelivered
		}
		stops[i].Status = entities.StopDelivered
		stops[i].DeliveredAt = &deliveredAt
		return nil
	}
	return delivery.ErrStopNotFound
}

func (r *memoryRepository) CountDeliveredStops(_ context.Context, deliveryID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, stop := range r.stops[deliveryID] {
		if stop.Status == entities.StopDelivered {
			count++
		}
	}
	return count, nil
}

// inlineTx выполняет fn без транзакции.
type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// silentNotifier собирает уведомления.
type silentNotifier struct {
	mu   sync.Mutex
	sent []entities.StatusNotification
}

func (n *silentNotifier) Notify(_ context.Context, notification entities.StatusNotification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

func (n *silentNotifier) statuses() []entities.DeliveryStatusType {
	n.mu.Lock()
	defer n.mu.Unlock()

	result := make([]entities.DeliveryStatusType, 0, len(n.sent))
	for _, s := range n.sent {
		result = append(result, s.Status)
	}
	return result
}

type onlinePartners struct{}

func (onlinePartners) GetPartner(_ context.Context, id string) (*entities.Partner, error) {
	return &entities.Partner{ID: id, Status: entities.PartnerOnline}, nil
}

type flatPrice struct{}

func (flatPrice) Quote(_ context.Context, req entities.PriceQuoteRequest) (*entities.PriceBreakdown, error) {
	return &entities.PriceBreakdown{
		NumStops: len(req.DropAddresses),
		Total:    decimal.RequireFromString("150.00"),
	}, nil
}
