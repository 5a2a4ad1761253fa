package tnyulib

import (
	"github.com/techatnyu/tnyu/pkg/jsonapi"
	"github.com/techatnyu/tnyu/pkg/tnyuapi"
)

const (
	eventsUrl        = "/events"
	eventUrl         = "/events/e1"
	secondEventUrl   = "/events/e2"
	venueUrl         = "/venues/v1"
	personUrl        = "/people/p1"
	organizationUrl  = "/organizations/o1"
	missingPersonUrl = "/people/p2"
)

func getTestClient(mockData jsonapi.MockData) *tnyuapi.Client {
	api := jsonapi.GetTestConnection(mockData)
	return tnyuapi.New("XXX", tnyuapi.WithConnection(&api))
}

func getEndpoint(texts ...string) *jsonapi.MockEndpoint {
	requests := make([]jsonapi.MockRequest, 0, len(texts))
	for _, text := range texts {
		requests = append(requests, jsonapi.MockRequest{
			Response: jsonapi.MockResponse{Text: text},
		})
	}
	return &jsonapi.MockEndpoint{Requests: requests}
}

func getNotFoundEndpoint() *jsonapi.MockEndpoint {
	return &jsonapi.MockEndpoint{Requests: []jsonapi.MockRequest{{
		Response: jsonapi.MockResponse{Status: 404, Text: `{"errors": []}`},
	}}}
}

const eventsListing = `{"data": [
	{"type": "events", "id": "e2", "attributes": {
		"title": "Demo Days", "startDateTime": "2015-05-01T18:00:00Z",
		"endDateTime": "2015-05-01T21:00:00Z"}},
	{"type": "events", "id": "e1", "attributes": {
		"title": "Hack Night", "startDateTime": "2015-04-01T18:00:00Z",
		"description": "Bring a laptop", "rsvpUrl": "https://rsvp"}},
	{"type": "events", "id": "e3", "attributes": {
		"title": "Someday", "startDateTime": "not a date"}}
]}`

const eventWithVenue = `{"data": {"type": "events", "id": "e1",
	"attributes": {"title": "Hack Night"},
	"relationships": {"venue": {"data": {"type": "venues", "id": "v1"}}}}}`

const venue = `{"data": {"type": "venues", "id": "v1",
	"attributes": {"name": "Courant", "address": "251 Mercer St"}}}`
