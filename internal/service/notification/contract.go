//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import "context"

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
