package sender

import "net/http"

// HTTPClient executes the push request. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
