package delivery

import "quickparcel/internal/entities"

// Статусы, которые партнёр может выставить вручную. completed ставит только оплата.
var pushableStatuses = map[entities.DeliveryStatusType]struct{}{
	entities.DeliveryAccepted:  {},
	entities.DeliveryPicked:    {},
	entities.DeliveryOnTheWay:  {},
	entities.DeliveryDelivered: {},
}

var forwardTransitions = map[entities.DeliveryStatusType]map[entities.DeliveryStatusType]struct{}{
	entities.DeliveryAccepted: {
		entities.DeliveryPicked:    {},
		entities.DeliveryOnTheWay:  {},
		entities.DeliveryDelivered: {},
	},
	entities.DeliveryPicked: {
		entities.DeliveryOnTheWay:  {},
		entities.DeliveryDelivered: {},
	},
	entities.DeliveryOnTheWay: {
		entities.DeliveryDelivered: {},
	},
}

// TransitionPolicy правила ручной смены статуса партнёром.
// В нестрогом режиме между статусами в пути можно ходить в любую сторону,
// в строгом только вперёд по forwardTransitions.
// В обоих режимах delivered и completed финальны для ручной смены.
type TransitionPolicy struct {
	strict bool
}

func NewTransitionPolicy(strict bool) TransitionPolicy {
	return TransitionPolicy{strict: strict}
}

func (p TransitionPolicy) Allows(current, next entities.DeliveryStatusType) bool {
	if _, ok := pushableStatuses[next]; !ok {
		return false
	}
	if !current.InTransit() {
		return false
	}
	if current == next || !p.strict {
		return true
	}
	_, ok := forwardTransitions[current][next]
	return ok
}

func isPushable(status entities.DeliveryStatusType) bool {
	_, ok := pushableStatuses[status]
	return ok
}
