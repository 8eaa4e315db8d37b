package zebitex

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

//
// Payload builds the canonical string that is signed for a private request:
//
//  <METHOD>|/<path>|<nonce>|<json params or {}>
//
func Payload(method string, path string, nonce int64, params Params) (string, error) {
	args, err := params.Canonical()
	if err != nil {
		return "", err
	}

	return strings.Join([]string{
		strings.ToUpper(method),
		"/" + strings.TrimPrefix(path, "/"),
		strconv.FormatInt(nonce, 10),
		args,
	}, "|"), nil
}

//
// Sign computes the lowercase hex HMAC-SHA256 signature of a private request.
//
func Sign(secret string, method string, path string, nonce int64, params Params) (string, error) {
	payload, err := Payload(method, path, nonce, params)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))

	return hex.EncodeToString(mac.Sum(nil)), nil
}

//
// AuthHeader builds the value of the Authorization header of a private request. The signed_params
// field must name exactly the parameters that went into the signature, in the same order.
//
func AuthHeader(key string, signature string, nonce int64, params Params) string {
	return fmt.Sprintf(
		"%s access_key=%s, signature=%s, tonce=%d, signed_params=%s",
		AuthScheme,
		key,
		signature,
		nonce,
		strings.Join(params.Keys(), ";"),
	)
}
