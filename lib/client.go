package lib

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// Client talks to one hydrus client API instance. The base URL and access
// key are fixed at construction; build a new Client to change either.
// Concurrent use is only as safe as the underlying http.Client.
type Client struct {
	url       string
	accessKey string
	session   *http.Client
}

// NewClient builds a client for the API at rawURL. The access key may be
// empty for endpoints that accept anonymous calls. Construction fetches the
// service's reported API version once; a mismatch with ClientAPIVersion is
// logged as a warning but does not fail.
func NewClient(accessKey string, rawURL string) (*Client, error) {
	if rawURL == "" {
		return nil, &UsageError{Message: "need a valid API URL"}
	}
	c := &Client{
		url:       strings.TrimRight(rawURL, "/"),
		accessKey: accessKey,
		session:   &http.Client{},
	}
	version, err := c.APIVersion()
	if err != nil {
		return nil, err
	}
	if version != ClientAPIVersion {
		Logger.WithFields(logrus.Fields{
			"binding": ClientAPIVersion,
			"service": version,
		}).Warn("API version of binding and service differ, this might lead to incompatibilities")
	}
	return c, nil
}

// callEndpoint sends one request to the service. A 2xx status returns the
// raw response for the per-operation translators; anything else becomes a
// classified error and the call stops there.
func (c *Client) callEndpoint(method string, endpoint string, params url.Values, body io.Reader, contentType string) (*Response, error) {
	target := c.url + endpoint
	if len(params) > 0 {
		target = fmt.Sprintf("%s?%s", target, params.Encode())
	}
	request, err := http.NewRequest(method, target, body)
	if err != nil {
		return nil, err
	}
	if c.accessKey != "" {
		request.Header.Set(AccessKeyHeader, c.accessKey)
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	response, err := c.session.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to client API: %v", err)
	}
	defer response.Body.Close()
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}
	raw := &Response{
		StatusCode: response.StatusCode,
		Status:     response.Status,
		Body:       responseBody,
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, classifyStatus(raw)
	}
	return raw, nil
}

func (c *Client) get(endpoint string, params url.Values) (*Response, error) {
	return c.callEndpoint(http.MethodGet, endpoint, params, nil, "")
}

func (c *Client) postJSON(endpoint string, payload interface{}) (*Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.callEndpoint(http.MethodPost, endpoint, nil, bytes.NewReader(data), ContentTypeJson)
}

// jsonParam encodes a list or scalar the way the service expects its query
// values: as JSON text.
func jsonParam(value interface{}) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}
