package tnyuapi

import (
	"github.com/techatnyu/tnyu/pkg/jsonapi"
)

// Venue carries relationships in its payload but exposes no accessor for
// them
type Venue struct {
	record
}

func newVenue(client *Client, data jsonapi.Resource) *Venue {
	return &Venue{newRecord(client, Venues, data)}
}
