package jsonapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	ContentType = "application/vnd.api+json"
	Accept      = "application/*, text/*"
)

type Connection struct {
	Host    string
	Token   string
	Client  http.Client
	Headers map[string]string
	Logger  *zap.Logger

	// Used for testing
	RequestMethod func(method, path string) ([]byte, error)
}

func (c *Connection) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Connection) request(method, path string) ([]byte, error) {
	if c.RequestMethod != nil {
		return c.RequestMethod(method, path)
	}

	if strings.HasPrefix(path, "/") {
		path = strings.TrimSuffix(c.Host, "/") + path
	}

	if c.Client.CheckRedirect == nil {
		c.Client.CheckRedirect = func(
			req *http.Request, via []*http.Request,
		) error {
			return &RedirectError{Location: req.URL.String()}
		}
	}

	requestObj, err := http.NewRequest(method, path, nil)
	if err != nil {
		return nil, err
	}

	requestObj.Header.Add("Content-Type", ContentType)
	requestObj.Header.Add("Accept", Accept)
	requestObj.Header.Add("Authorization", "Bearer "+c.Token)
	for header, value := range c.Headers {
		requestObj.Header.Add(header, value)
	}

	start := time.Now()
	response, err := c.Client.Do(requestObj)
	if err != nil {
		c.logger().Debug("request failed",
			zap.String("method", method),
			zap.String("url", path),
			zap.Error(err))
		return nil, err
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	c.logger().Debug("request done",
		zap.String("method", method),
		zap.String("url", path),
		zap.Int("status", response.StatusCode),
		zap.Duration("took", time.Since(start)))

	errorResponse := parseErrorResponse(response.StatusCode, body)
	if errorResponse != nil {
		return nil, errorResponse
	}

	return body, nil
}

// decode unmarshals a response body keeping numbers as json.Number
func decode(body []byte, target interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return &DecodeError{Body: body, Err: err}
	}
	return nil
}

/*
Get
Returns a Resource instance from the server based on its 'type' and 'id'.
Both are escaped, so an id can never point to another endpoint.
*/
func (c *Connection) Get(Type, Id string) (Resource, error) {
	path := fmt.Sprintf("/%s/%s", url.PathEscape(Type), url.PathEscape(Id))
	return c.getFromPath(path)
}

func (c *Connection) getFromPath(path string) (Resource, error) {
	var response PayloadSingular
	var result Resource

	body, err := c.request("GET", path)
	if err != nil {
		return result, err
	}
	err = decode(body, &response)
	if err != nil {
		return result, err
	}
	if response.Data == nil {
		return result, &EmptyDataError{Path: path}
	}
	return payloadToResource(*response.Data)
}

/*
List
Returns a Collection instance from the server holding every item the
collection endpoint for 'Type' returned, in response order.
*/
func (c *Connection) List(Type string) (Collection, error) {
	return c.listFromPath("/" + url.PathEscape(Type))
}

func (c *Connection) listFromPath(Url string) (Collection, error) {
	var result Collection
	body, err := c.request("GET", Url)
	if err != nil {
		return result, err
	}

	var response PayloadPlural
	err = decode(body, &response)
	if err != nil {
		return result, err
	}

	result.Data = make([]Resource, 0, len(response.Data))

	for _, item := range response.Data {
		resource, err := payloadToResource(item)
		if err != nil {
			return result, err
		}
		result.Data = append(result.Data, resource)
	}

	return result, nil
}
