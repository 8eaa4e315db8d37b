package zebitex

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

//
// Response implements the exchange.Response interface for wrapped responses from the Zebitex API.
//
type Response struct {
	response *http.Response
	body     []byte
	data     interface{}
}

func (o *Response) Raw() *http.Response {
	return o.response
}

func (o *Response) Body() []byte {
	return o.body
}

func (o *Response) Data() interface{} {
	return o.data
}

func (o *Response) Decode(v interface{}) error {
	return json.Unmarshal(o.body, v)
}

//
// decode parses the payload into generic JSON values. Numbers are kept as json.Number so that
// prices and amounts do not lose precision.
//
func (o *Response) decode() error {
	if len(bytes.TrimSpace(o.body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(o.body))
	dec.UseNumber()

	if err := dec.Decode(&o.data); err != nil {
		return err
	}

	//
	// A payload is a single JSON value; anything but whitespace after it means the body is broken.
	//
	var trailing interface{}
	if err := dec.Decode(&trailing); err != io.EOF {
		o.data = nil

		return errors.Errorf("unexpected data after JSON value (offset %d)", dec.InputOffset())
	}

	return nil
}
