//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_test
package pricing

import "context"

// DistanceEstimator дорожное расстояние между двумя адресами в километрах.
type DistanceEstimator interface {
	DistanceKm(ctx context.Context, origin, destination string) (float64, error)
}
