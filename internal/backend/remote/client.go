// Package remote holds the API client for Xray Server, Data Center & Cloud. It maps an import request onto the
// endpoint layout of the configured hosting type.
package remote

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	xrayimport "github.com/rwx-research/xray-import"
	"github.com/rwx-research/xray-import/internal/backend"
	"github.com/rwx-research/xray-import/internal/catalog"
	"github.com/rwx-research/xray-import/internal/errors"
)

// Client is the main client for the Xray API.
type Client struct {
	ClientConfig
	RoundTrip func(*http.Request) (*http.Response, error)

	cloudToken *string
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewClient is the preferred constructor for the API client. It makes sure that the configuration is valid & necessary
// defaults are applied.
func NewClient(cfg ClientConfig) (Client, error) {
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return Client{}, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	roundTrip := func(req *http.Request) (*http.Response, error) {
		req.Header.Set("User-Agent", fmt.Sprintf("xray-import/%s", strings.TrimPrefix(xrayimport.Version, "v")))

		if cfg.Debug {
			dump, _ := httputil.DumpRequestOut(req, false)
			sanitizedDump := authorizationRegexp.ReplaceAll(dump, []byte("Authorization: <redacted>"))
			cfg.Log.Debugf("Executing following HTTP request:\n\n%s\n", sanitizedDump)
		}

		resp, err := transport.RoundTrip(req)
		if err != nil {
			return resp, errors.NewSystemError("unable to perform HTTP request to %q: %s", req.URL, err)
		}

		if cfg.Debug {
			dump, _ := httputil.DumpResponse(resp, true)
			sanitizedDump := setCookieHeaderRegexp.ReplaceAll(dump, []byte("Set-Cookie: <redacted>"))
			cfg.Log.Debugf("Received following response:\n\n%s\n", sanitizedDump)
		}

		return resp, nil
	}

	return Client{ClientConfig: cfg, RoundTrip: roundTrip, cloudToken: new(string)}, nil
}

// Upload sends one import request to Xray. A response with a non-successful status code is returned together with a
// ProviderError.
func (c Client) Upload(
	ctx context.Context,
	format catalog.Format,
	data map[catalog.DataParameter]backend.Payload,
	query map[catalog.QueryParameter]string,
) (backend.UploadResult, error) {
	results, ok := data[catalog.DataParameterResults]
	if !ok {
		return backend.UploadResult{}, errors.NewInternalError("no results payload provided for %q", format)
	}

	req, err := c.newRequest(ctx)
	if err != nil {
		return backend.UploadResult{}, err
	}

	for _, qp := range catalog.QueryParameters() {
		if value := strings.TrimSpace(query[qp]); value != "" {
			req.SetQueryParam(qp.Key(), value)
		}
	}

	info, hasInfo := data[catalog.DataParameterInfo]

	switch {
	case format.IsMultipartOnly():
		fields := []*resty.MultipartField{c.multipartField(c.resultsField(), results)}
		if hasInfo {
			fields = append(fields, c.multipartField(multipartInfo, info))
		}
		req.SetMultipartFields(fields...)
	case c.Hosting == backend.HostingServer && format.ResultsMediaType() != contentTypeJSON:
		req.SetMultipartFields(c.multipartField(multipartResultsServer, results))
	default:
		req.SetHeader(headerContentType, results.MediaType).SetBody(results.Content)
	}

	endpoint := c.importEndpoint(format)

	resp, err := req.Post(endpoint)
	if err != nil {
		return backend.UploadResult{}, c.transportError(endpoint, err)
	}

	result := backend.UploadResult{StatusCode: resp.StatusCode(), Message: string(resp.Body())}
	if !result.Successful() {
		return result, errors.NewProviderError(
			result.StatusCode,
			result.Message,
			"Xray rejected the import. Endpoint was %q, Status Code %d",
			endpoint,
			result.StatusCode,
		)
	}

	return result, nil
}

func (c Client) newRequest(ctx context.Context) (*resty.Request, error) {
	req := c.restyClient().R().SetContext(ctx)

	switch c.Hosting {
	case backend.HostingCloud:
		token, err := c.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		req.SetAuthToken(token)
	default:
		if c.Token != "" {
			req.SetAuthToken(c.Token)
		} else {
			req.SetBasicAuth(c.Username, c.Password)
		}
	}

	return req, nil
}

// authenticate exchanges the Cloud API key for a token. Tokens are kept for the lifetime of the client.
func (c Client) authenticate(ctx context.Context) (string, error) {
	if c.cloudToken != nil && *c.cloudToken != "" {
		return *c.cloudToken, nil
	}

	endpoint := c.CloudAddress + cloudAuthenticatePath

	resp, err := c.restyClient().R().
		SetContext(ctx).
		SetHeader(headerContentType, contentTypeJSON).
		SetBody(map[string]string{"client_id": c.ClientID, "client_secret": c.ClientSecret}).
		Post(endpoint)
	if err != nil {
		return "", c.transportError(endpoint, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", errors.NewProviderError(
			resp.StatusCode(),
			string(resp.Body()),
			"unable to authenticate against Xray Cloud. Endpoint was %q, Status Code %d",
			endpoint,
			resp.StatusCode(),
		)
	}

	// the token is returned as a bare JSON string
	token := strings.TrimSpace(gjson.ParseBytes(resp.Body()).String())
	if token == "" {
		return "", errors.NewProviderError(
			resp.StatusCode(),
			string(resp.Body()),
			"Xray Cloud did not return a token. Endpoint was %q",
			endpoint,
		)
	}

	if c.cloudToken != nil {
		*c.cloudToken = token
	}

	return token, nil
}

func (c Client) importEndpoint(format catalog.Format) string {
	if c.Hosting == backend.HostingCloud {
		return c.CloudAddress + cloudImportPath + format.Suffix()
	}

	return c.ServerAddress + serverImportPath + format.Suffix()
}

func (c Client) resultsField() string {
	if c.Hosting == backend.HostingCloud {
		return multipartResultsCloud
	}

	return multipartResultsServer
}

func (c Client) multipartField(param string, payload backend.Payload) *resty.MultipartField {
	return &resty.MultipartField{
		Param:       param,
		FileName:    payload.Name,
		ContentType: payload.MediaType,
		Reader:      bytes.NewReader(payload.Content),
	}
}

func (c Client) restyClient() *resty.Client {
	return resty.New().SetTransport(roundTripFunc(c.RoundTrip))
}

// transportError keeps errors raised by our own round-tripper and wraps everything else
func (c Client) transportError(endpoint string, err error) error {
	if _, ok := errors.AsSystemError(err); ok {
		return err
	}

	return errors.NewSystemError("unable to perform HTTP request to %q: %s", endpoint, err)
}
