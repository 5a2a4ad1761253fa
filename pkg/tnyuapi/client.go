package tnyuapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/techatnyu/tnyu/pkg/jsonapi"
	"go.uber.org/zap"
)

const DefaultAPIRoot = "https://api.tnyu.org/v3"

type Client struct {
	api    *jsonapi.Connection
	logger *zap.Logger
}

type Option func(*Client)

// WithAPIRoot points the client to another deployment, eg a mock server
func WithAPIRoot(root string) Option {
	return func(c *Client) {
		c.api.Host = root
	}
}

// WithHTTPClient sets the http.Client used for requests. Timeouts are
// configured here.
func WithHTTPClient(httpClient http.Client) Option {
	return func(c *Client) {
		c.api.Client = httpClient
	}
}

func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.api.Headers = headers
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.api.Logger = logger
	}
}

// WithConnection replaces the whole transport. Options applied before it
// are lost.
func WithConnection(api *jsonapi.Connection) Option {
	return func(c *Client) {
		c.api = api
		c.api.Logger = c.logger
	}
}

/*
New
Returns a Client that authenticates with 'apiKey'. An empty key is not
rejected; requests are sent with an empty bearer token.
*/
func New(apiKey string, options ...Option) *Client {
	client := &Client{
		api:    &jsonapi.Connection{Host: DefaultAPIRoot, Token: apiKey},
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(client)
	}
	if client.logger == nil {
		client.logger = zap.NewNop()
	}
	return client
}

/*
List
Fetch the whole collection of 'kind' with a single request and return one
object per record, in response order. If 'sortBy' is not empty, the result is
sorted in ascending order by that attribute; the first record must have it,
otherwise an *InvalidAttributeError is returned.
*/
func (c *Client) List(kind Kind, sortBy string) ([]Resource, error) {
	if !kind.valid() {
		return nil, &UnknownKindError{Name: string(kind)}
	}
	collection, err := c.api.List(string(kind))
	if err != nil {
		return nil, &TransportError{Op: fmt.Sprintf("GET /%s", kind), Err: err}
	}

	result := make([]Resource, 0, collection.Len())
	for _, item := range collection.Data {
		result = append(result, kind.wrap(c, item))
	}
	c.logger.Debug("listed resources",
		zap.String("kind", string(kind)), zap.Int("count", len(result)))

	if sortBy != "" {
		err = sortResources(result, sortBy)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

/*
Fetch
Return a single resource of 'kind' by its id. Returns a *NotFoundError if the
server does not know about it.
*/
func (c *Client) Fetch(kind Kind, id string) (Resource, error) {
	if !kind.valid() {
		return nil, &UnknownKindError{Name: string(kind)}
	}
	data, err := c.get(kind, id)
	if err != nil {
		return nil, err
	}
	return kind.wrap(c, data), nil
}

func (c *Client) get(kind Kind, id string) (jsonapi.Resource, error) {
	// '/kind/' would be the collection
	if id == "" {
		return jsonapi.Resource{}, &NotFoundError{Kind: kind}
	}
	data, err := c.api.Get(string(kind), id)
	if err == nil {
		return data, nil
	}

	var apiError *jsonapi.Error
	var emptyError *jsonapi.EmptyDataError
	if (errors.As(err, &apiError) && apiError.NotFound()) ||
		errors.As(err, &emptyError) {
		return data, &NotFoundError{Kind: kind, Id: id, Err: err}
	}
	return data, &TransportError{
		Op:  fmt.Sprintf("GET /%s/%s", kind, id),
		Err: err,
	}
}

func (c *Client) Event(id string) (*Event, error) {
	data, err := c.get(Events, id)
	if err != nil {
		return nil, err
	}
	return newEvent(c, data), nil
}

func (c *Client) Person(id string) (*Person, error) {
	data, err := c.get(People, id)
	if err != nil {
		return nil, err
	}
	return newPerson(c, data), nil
}

func (c *Client) Venue(id string) (*Venue, error) {
	data, err := c.get(Venues, id)
	if err != nil {
		return nil, err
	}
	return newVenue(c, data), nil
}

func (c *Client) Organization(id string) (*Organization, error) {
	data, err := c.get(Organizations, id)
	if err != nil {
		return nil, err
	}
	return newOrganization(c, data), nil
}

func (c *Client) Team(id string) (*Team, error) {
	data, err := c.get(Teams, id)
	if err != nil {
		return nil, err
	}
	return newTeam(c, data), nil
}

func (c *Client) Events(sortBy string) ([]*Event, error) {
	resources, err := c.List(Events, sortBy)
	if err != nil {
		return nil, err
	}
	result := make([]*Event, 0, len(resources))
	for _, resource := range resources {
		result = append(result, resource.(*Event))
	}
	return result, nil
}

func (c *Client) People(sortBy string) ([]*Person, error) {
	resources, err := c.List(People, sortBy)
	if err != nil {
		return nil, err
	}
	result := make([]*Person, 0, len(resources))
	for _, resource := range resources {
		result = append(result, resource.(*Person))
	}
	return result, nil
}

func (c *Client) Venues(sortBy string) ([]*Venue, error) {
	resources, err := c.List(Venues, sortBy)
	if err != nil {
		return nil, err
	}
	result := make([]*Venue, 0, len(resources))
	for _, resource := range resources {
		result = append(result, resource.(*Venue))
	}
	return result, nil
}

func (c *Client) Organizations(sortBy string) ([]*Organization, error) {
	resources, err := c.List(Organizations, sortBy)
	if err != nil {
		return nil, err
	}
	result := make([]*Organization, 0, len(resources))
	for _, resource := range resources {
		result = append(result, resource.(*Organization))
	}
	return result, nil
}

func (c *Client) Teams(sortBy string) ([]*Team, error) {
	resources, err := c.List(Teams, sortBy)
	if err != nil {
		return nil, err
	}
	result := make([]*Team, 0, len(resources))
	for _, resource := range resources {
		result = append(result, resource.(*Team))
	}
	return result, nil
}
