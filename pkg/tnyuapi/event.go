package tnyuapi

import (
	"github.com/techatnyu/tnyu/pkg/jsonapi"
)

type Event struct {
	record
}

func newEvent(client *Client, data jsonapi.Resource) *Event {
	return &Event{newRecord(client, Events, data)}
}

/*
Venue fetches the event's venue. Every event is assumed to have one: a missing
'venue' relationship fails with *UnknownAttributeError and a null one with
*NotFoundError. Events that came from a listing usually carry no relationship
data at all; fetch them again with Client.Event first.
*/
func (e *Event) Venue() (*Venue, error) {
	relationship, err := e.related("venue")
	if err != nil {
		return nil, err
	}
	if relationship.Type != jsonapi.SINGULAR {
		return nil, &NotFoundError{Kind: Venues, Reference: true}
	}
	return e.client.Venue(relationship.DataSingular.Id)
}
