//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=distance_test
package distance

import "net/http"

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}
