package sender

import "net/http"

// Outcome is the result of one send attempt.
//
// Exactly one of the following holds: Err is non-nil and no status was
// obtained, or StatusCode carries the response status.
type Outcome struct {
	StatusCode int
	Err        error
}

// Succeeded reports whether the service answered 200 OK.
func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.StatusCode == http.StatusOK
}

// TransportFailed reports whether the request never produced a status.
func (o Outcome) TransportFailed() bool {
	return o.Err != nil
}
