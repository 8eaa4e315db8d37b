package exchange

import "net/http"

//
// Response generically provides an interface to an object that represents a response from a call to
// an exchange's API endpoint.
//
type Response interface {

	//
	// Raw provides the raw HTTP response from the endpoint call that was made. The body of the raw
	// response has already been consumed; use Body instead.
	//
	Raw() *http.Response

	//
	// Body provides the raw bytes of the response payload.
	//
	Body() []byte

	//
	// Data provides the response payload decoded into generic JSON values (maps, slices, strings,
	// json.Number, booleans and nil). An empty payload decodes to nil.
	//
	Data() interface{}

	//
	// Decode unmarshals the response payload into the provided value.
	//
	Decode(v interface{}) error
}
