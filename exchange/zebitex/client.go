package zebitex

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lukehollenback/zebitex/exchange"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	Name = "zebitex-client"
)

var _ exchange.Client = (*Client)(nil)

//
// Client implements the exchange.Client interface for the Zebitex API. The credentials and base URL
// never change after construction, so a single client can be shared by concurrent callers.
//
type Client struct {
	key    string
	secret string
	url    string
	http   *resty.Client
	now    func() time.Time
	logger *logrus.Entry
}

//
// Option customizes a Client at construction time.
//
type Option func(*Client)

//
// WithBaseURL overrides the base URL that was selected by the environment flag. The URL is expected
// to end with a slash.
//
func WithBaseURL(url string) Option {
	return func(o *Client) {
		o.url = url
	}
}

//
// WithHTTPClient makes the client send its requests through the provided HTTP client. Timeouts,
// proxies and connection reuse are configured there.
//
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Client) {
		o.http = resty.NewWithClient(httpClient)
	}
}

//
// WithClock replaces the wall clock the request nonces are derived from.
//
func WithClock(now func() time.Time) Option {
	return func(o *Client) {
		o.now = now
	}
}

//
// WithLogger replaces the logger requests are traced to.
//
func WithLogger(logger *logrus.Entry) Option {
	return func(o *Client) {
		o.logger = logger.WithField("service", Name)
	}
}

//
// NewClient instantiates a client for the staging environment if dev is set and for production
// otherwise. The key and secret are not validated; a client with empty credentials can still use
// the public endpoints.
//
func NewClient(key string, secret string, dev bool, opts ...Option) *Client {
	url := ProductionURL
	if dev {
		url = StagingURL
	}

	o := &Client{
		key:    key,
		secret: secret,
		url:    url,
		http:   resty.New(),
		now:    time.Now,
		logger: logrus.NewEntry(logrus.StandardLogger()).WithField("service", Name),
	}

	for _, opt := range opts {
		opt(o)
	}

	o.http.SetLogger(o.logger)

	return o
}

//
// Key returns the access key the client signs requests with.
//
func (o *Client) Key() string {
	return o.key
}

//
// URL returns the base URL requests are sent to.
//
func (o *Client) URL() string {
	return o.url
}

//
// nonce derives the nonce ("tonce") of a private request from the current time in milliseconds.
//
func (o *Client) nonce() int64 {
	return o.now().UnixMilli()
}

//
// publicRequest makes an unauthenticated GET request against the specified path.
//
func (o *Client) publicRequest(ctx context.Context, path string, params Params) (exchange.Response, error) {
	return o.request(ctx, http.MethodGet, path, params, nil)
}

//
// privateRequest signs and makes a request against the specified path. The same parameters are
// signed and sent: in the query string for GET requests and as a JSON body otherwise.
//
func (o *Client) privateRequest(ctx context.Context, method string, path string, params Params) (exchange.Response, error) {
	nonce := o.nonce()

	signature, err := Sign(o.secret, method, path, nonce, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to sign %s %s", method, path)
	}

	o.logger.WithFields(logrus.Fields{
		"method":        method,
		"path":          path,
		"tonce":         nonce,
		"signed_params": strings.Join(params.Keys(), ";"),
	}).Debug("Signed request.")

	headers := map[string]string{
		AuthorizationHeader: AuthHeader(o.key, signature, nonce, params),
	}

	return o.request(ctx, method, path, params, headers)
}

//
// request makes the specified request to the Zebitex API and returns a wrapped response (with its
// payload decoded) and/or an error if something went wrong. Nothing is retried.
//
func (o *Client) request(
	ctx context.Context,
	method string,
	path string,
	params Params,
	headers map[string]string,
) (exchange.Response, error) {
	path = strings.TrimPrefix(path, "/")

	//
	// Build the request.
	//
	req := o.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeaders(headers)

	if method == http.MethodGet {
		if len(params) > 0 {
			req.SetQueryParamsFromValues(params.Values())
		}
	} else if params != nil {
		body, err := params.MarshalJSON()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to serialize body of %s %s", method, path)
		}

		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	//
	// Make the endpoint request and handle any errors along the way.
	//
	resp, err := req.Execute(method, o.url+path)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}

	o.logger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode(),
	}).Debug("Received response.")

	wrappedResp := &Response{
		response: resp.RawResponse,
		body:     resp.Body(),
	}

	//
	// Make sure the status code was valid.
	//
	if !resp.IsSuccess() {
		return wrappedResp, exchange.NewHTTPError(resp.StatusCode(), resp.Body())
	}

	//
	// Decode the response.
	//
	if err := wrappedResp.decode(); err != nil {
		return wrappedResp, errors.Wrapf(err, "failed to decode response of %s %s", method, path)
	}

	return wrappedResp, nil
}
