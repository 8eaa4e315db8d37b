package exchange

import "fmt"

//
// HTTPError represents an error due to a non-2xx response from an API endpoint. The payload is kept
// as-is since exchanges rarely agree on an error format. Authentication failures caused by a bad
// signature also surface as this error, as the server is the only party that can detect them.
//
type HTTPError struct {
	statusCode int
	body       []byte
}

func NewHTTPError(statusCode int, body []byte) *HTTPError {
	return &HTTPError{
		statusCode: statusCode,
		body:       body,
	}
}

func (o *HTTPError) StatusCode() int {
	return o.statusCode
}

func (o *HTTPError) Body() []byte {
	return o.body
}

func (o *HTTPError) Error() string {
	if len(o.body) == 0 {
		return fmt.Sprintf("server responded with a %d status code", o.statusCode)
	}

	return fmt.Sprintf("server responded with a %d status code (body: %s)", o.statusCode, o.body)
}
