package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"quickparcel/internal/entities"
)

type Delivery struct {
	repository     Repository
	partnerService PartnerService
	pricing        PriceCalculator
	notifier       Notifier
	txManager      TxManager
	transitions    TransitionPolicy
}

func New(
	repository Repository,
	partnerService PartnerService,
	pricing PriceCalculator,
	notifier Notifier,
	txManager TxManager,
	transitions TransitionPolicy,
) *Delivery {
	return &Delivery{
		repository:     repository,
		partnerService: partnerService,
		pricing:        pricing,
		notifier:       notifier,
		txManager:      txManager,
		transitions:    transitions,
	}
}

// CreateDelivery считает тариф и сохраняет доставку вместе с остановками одной транзакцией.
func (d *Delivery) CreateDelivery(ctx context.Context, create entities.DeliveryCreate) (*entities.Delivery, error) {
	if err := validateCreate(create); err != nil {
		return nil, err
	}
	create.Weight = roundWeight(create.Weight)

	dropAddresses := make([]string, 0, len(create.Stops))
	for _, stop := range create.Stops {
		dropAddresses = append(dropAddresses, stop.DropAddress)
	}

	// расстояние считается до транзакции, чтобы не держать её на сетевом вызове
	quote, err := d.pricing.Quote(ctx, entities.PriceQuoteRequest{
		PickupAddress: create.SenderAddress,
		DropAddresses: dropAddresses,
		Weight:        create.Weight,
	})
	if err != nil {
		return nil, fmt.Errorf("calculate price: %w", err)
	}

	var delivery *entities.Delivery
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := d.repository.Create(ctx, create, quote.Total)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		stops, err := d.repository.CreateStops(ctx, created.ID, create.Stops)
		if err != nil {
			return fmt.Errorf("create delivery stops: %w", err)
		}

		created.Stops = stops
		delivery = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notify(ctx, delivery, delivery.CreatedAt)
	return delivery, nil
}

func (d *Delivery) TrackDelivery(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := d.getWithStops(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	return delivery, nil
}

// PartnerDeliveries доставки партнёра и свободные доставки, все с остановками.
func (d *Delivery) PartnerDeliveries(ctx context.Context, partnerID string) (*entities.PartnerDeliveries, error) {
	if !isValidDeliveryID(partnerID) {
		return nil, ErrInvalidPartnerID
	}

	assigned, err := d.repository.GetByPartnerID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("get partner deliveries: %w", err)
	}

	available, err := d.repository.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available deliveries: %w", err)
	}

	ids := make([]string, 0, len(assigned)+len(available))
	for _, delivery := range assigned {
		ids = append(ids, delivery.ID)
	}
	for _, delivery := range available {
		ids = append(ids, delivery.ID)
	}

	if len(ids) > 0 {
		stops, err := d.repository.GetStops(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("get delivery stops: %w", err)
		}
		attachStops(assigned, stops)
		attachStops(available, stops)
	}

	return &entities.PartnerDeliveries{
		Assigned:  assigned,
		Available: available,
	}, nil
}

// AcceptDelivery закрепляет свободную доставку за партнёром.
// Из двух одновременных принятий проходит ровно одно.
func (d *Delivery) AcceptDelivery(ctx context.Context, partnerID, deliveryID string) (*entities.Delivery, error) {
	if !isValidDeliveryID(partnerID) {
		return nil, ErrInvalidPartnerID
	}
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	partner, err := d.partnerService.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("get partner: %w", err)
	}
	if partner.Status != entities.PartnerOnline {
		return nil, ErrPartnerOffline
	}

	now := time.Now().UTC()
	accepted := entities.DeliveryAccepted
	ok, err := d.repository.UpdateIf(ctx, deliveryID,
		entities.DeliveryCondition{
			Status: []entities.DeliveryStatusType{entities.DeliveryAvailable},
		},
		entities.DeliveryModify{
			Status:     &accepted,
			PartnerID:  &partnerID,
			AcceptedAt: &now,
			UpdatedAt:  &now,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("accept delivery: %w", err)
	}
	if !ok {
		if _, err := d.repository.GetByID(ctx, deliveryID); err != nil {
			return nil, fmt.Errorf("accept delivery: %w", err)
		}
		return nil, ErrDeliveryNotAvailable
	}

	delivery, err := d.getWithStops(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	notification := entities.NewStatusNotification(delivery, now)
	partnerName := partner.Name()
	notification.PartnerName = &partnerName
	d.notifier.Notify(ctx, notification)
	return delivery, nil
}

// UpdateDeliveryStatus ручная смена статуса партнёром.
// delivered проходит ту же проверку остановок, что и DeliverStop.
func (d *Delivery) UpdateDeliveryStatus(
	ctx context.Context,
	partnerID, deliveryID string,
	status entities.DeliveryStatusType,
) (*entities.Delivery, error) {
	if !isValidDeliveryID(partnerID) {
		return nil, ErrInvalidPartnerID
	}
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isPushable(status) {
		return nil, ErrInvalidStatus
	}

	current, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	if !current.AssignedTo(partnerID) {
		return nil, ErrNotDeliveryOwner
	}
	if !d.transitions.Allows(current.Status, status) {
		return nil, fmt.Errorf("%s -> %s: %w", current.Status, status, ErrInvalidTransition)
	}

	now := time.Now().UTC()
	if status == entities.DeliveryDelivered {
		err = d.txManager.Do(ctx, func(ctx context.Context) error {
			completed, err := d.completeIfAllStopsDelivered(ctx, current, now)
			if err != nil {
				return err
			}
			if !completed {
				return ErrStopsPending
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		ok, err := d.repository.UpdateIf(ctx, deliveryID,
			entities.DeliveryCondition{
				Status:    []entities.DeliveryStatusType{current.Status},
				PartnerID: &partnerID,
			},
			entities.DeliveryModify{
				Status:    &status,
				UpdatedAt: &now,
			},
		)
		if err != nil {
			return nil, fmt.Errorf("update delivery status: %w", err)
		}
		if !ok {
			return nil, ErrDeliveryConflict
		}
	}

	delivery, err := d.getWithStops(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	d.notify(ctx, delivery, now)
	return delivery, nil
}

// DeliverStop отмечает остановку доставленной. Если она последняя,
// доставка в той же транзакции переходит в delivered.
func (d *Delivery) DeliverStop(
	ctx context.Context,
	partnerID, deliveryID string,
	stopNumber int,
) (*entities.StopDelivery, error) {
	if !isValidDeliveryID(partnerID) {
		return nil, ErrInvalidPartnerID
	}
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if stopNumber < 1 {
		return nil, ErrInvalidStopNumber
	}

	now := time.Now().UTC()
	result := entities.StopDelivery{
		DeliveryID: deliveryID,
		StopNumber: stopNumber,
	}

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("failed to get delivery: %w", err)
		}
		if !delivery.AssignedTo(partnerID) {
			return ErrNotDeliveryOwner
		}
		if stopNumber > delivery.TotalStops {
			return ErrStopNotFound
		}

		if err := d.repository.MarkStopDelivered(ctx, deliveryID, stopNumber, now); err != nil {
			return fmt.Errorf("mark stop delivered: %w", err)
		}

		completed, err := d.completeIfAllStopsDelivered(ctx, delivery, now)
		if err != nil {
			return err
		}
		result.DeliveryCompleted = completed
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.DeliveryCompleted {
		delivery, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return nil, fmt.Errorf("failed to get delivery: %w", err)
		}
		d.notify(ctx, delivery, now)
	}

	return &result, nil
}

// AmountDue сумма к оплате. Если при бронировании сумма не сохранилась,
// она пересчитывается по адресам и весу без записи в базу.
func (d *Delivery) AmountDue(ctx context.Context, deliveryID string) (*entities.Delivery, decimal.Decimal, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, decimal.Zero, ErrInvalidDeliveryID
	}

	delivery, err := d.getWithStops(ctx, deliveryID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to get delivery: %w", err)
	}
	if delivery.TotalAmount.IsPositive() {
		return delivery, delivery.TotalAmount, nil
	}

	drops := delivery.DropAddresses()
	if len(drops) == 0 {
		drops = []string{delivery.ReceiverAddress}
	}

	quote, err := d.pricing.Quote(ctx, entities.PriceQuoteRequest{
		PickupAddress: delivery.SenderAddress,
		DropAddresses: drops,
		Weight:        delivery.Weight,
	})
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("recalculate price: %w", err)
	}
	return delivery, quote.Total, nil
}

// completeIfAllStopsDelivered единственное место, где доставка переходит в delivered.
// Вызывается внутри транзакции.
func (d *Delivery) completeIfAllStopsDelivered(ctx context.Context, delivery *entities.Delivery, now time.Time) (bool, error) {
	delivered, err := d.repository.CountDeliveredStops(ctx, delivery.ID)
	if err != nil {
		return false, fmt.Errorf("count delivered stops: %w", err)
	}
	if delivered < delivery.TotalStops {
		return false, nil
	}

	status := entities.DeliveryDelivered
	paymentStatus := entities.PaymentPending
	ok, err := d.repository.UpdateIf(ctx, delivery.ID,
		entities.DeliveryCondition{
			Status:    entities.InTransitStatuses,
			PartnerID: delivery.PartnerID,
		},
		entities.DeliveryModify{
			Status:        &status,
			PaymentStatus: &paymentStatus,
			DeliveredAt:   &now,
			UpdatedAt:     &now,
		},
	)
	if err != nil {
		return false, fmt.Errorf("complete delivery: %w", err)
	}
	if !ok {
		return false, ErrDeliveryConflict
	}
	return true, nil
}

func (d *Delivery) getWithStops(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	delivery, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	stops, err := d.repository.GetStops(ctx, []string{deliveryID})
	if err != nil {
		return nil, fmt.Errorf("get delivery stops: %w", err)
	}
	delivery.Stops = stops[deliveryID]
	return delivery, nil
}

func (d *Delivery) notify(ctx context.Context, delivery *entities.Delivery, at time.Time) {
	d.notifier.Notify(ctx, entities.NewStatusNotification(delivery, at))
}

func attachStops(deliveries []entities.Delivery, stops map[string][]entities.DeliveryStop) {
	for i := range deliveries {
		deliveries[i].Stops = stops[deliveries[i].ID]
	}
}
