package zebitex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

//
// Param is a single key/value pair of a request's parameters.
//
type Param struct {
	Key   string
	Value interface{}
}

//
// Params is an ordered set of request parameters. The order matters: it is the order the keys are
// serialized in when the request is signed and the order they are listed in the authorization
// header, and the server rebuilds the signed payload from the latter.
//
type Params []Param

//
// Add appends a parameter and returns the extended set so calls can be chained.
//
func (o Params) Add(key string, value interface{}) Params {
	return append(o, Param{Key: key, Value: value})
}

//
// Keys returns the parameter names in order.
//
func (o Params) Keys() []string {
	keys := make([]string, len(o))

	for i, p := range o {
		keys[i] = p.Key
	}

	return keys
}

//
// MarshalJSON implements the json.Marshaler interface. Keys are written in insertion order, without
// whitespace and without HTML escaping, which is the canonical form the exchange signs.
//
func (o Params) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')

	for i, p := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalCanonical(p.Key)
		if err != nil {
			return nil, err
		}

		val, err := marshalCanonical(p.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to serialize parameter %q", p.Key)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

//
// Canonical returns the JSON text that takes part in the request signature. An empty set yields
// "{}".
//
func (o Params) Canonical() (string, error) {
	if len(o) == 0 {
		return "{}", nil
	}

	b, err := o.MarshalJSON()
	if err != nil {
		return "", err
	}

	return string(b), nil
}

//
// Values converts the parameters into a query string mapping.
//
func (o Params) Values() url.Values {
	values := url.Values{}

	for _, p := range o {
		values.Add(p.Key, queryValue(p.Value))
	}

	return values
}

func queryValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

//
// marshalCanonical encodes a single value the same way the exchange's reference client does, which
// notably means that "<", ">" and "&" are left alone.
//
func marshalCanonical(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// NOTE ~> json.Encoder terminates every value with a newline, which must not end up in the
	//  signed payload.
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

//
// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json always emits back into
// the raw characters, which is how the reference client serializes them. Escaped backslashes are
// skipped so a literal "\\u2028" in a value is left untouched.
//
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))

	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}

		if rest := b[i:]; bytes.HasPrefix(rest, []byte(`\u2028`)) || bytes.HasPrefix(rest, []byte(`\u2029`)) {
			if rest[5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}

			i += 5
			continue
		}

		out = append(out, b[i], b[i+1])
		i++
	}

	return out
}
