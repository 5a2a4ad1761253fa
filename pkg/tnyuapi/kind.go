package tnyuapi

import (
	"strings"

	"github.com/techatnyu/tnyu/pkg/jsonapi"
)

type Kind string

const (
	Events        Kind = "events"
	People        Kind = "people"
	Venues        Kind = "venues"
	Organizations Kind = "organizations"
	Teams         Kind = "teams"
)

var Kinds = []Kind{Events, People, Venues, Organizations, Teams}

func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds {
		if string(kind) == strings.ToLower(strings.TrimSpace(name)) {
			return kind, nil
		}
	}
	return "", &UnknownKindError{Name: name}
}

func (k Kind) valid() bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func kindNames() string {
	names := make([]string, 0, len(Kinds))
	for _, kind := range Kinds {
		names = append(names, string(kind))
	}
	return strings.Join(names, ", ")
}

func (k Kind) Singular() string {
	switch k {
	case Events:
		return "event"
	case People:
		return "person"
	case Venues:
		return "venue"
	case Organizations:
		return "organization"
	case Teams:
		return "team"
	}
	return string(k)
}

// Events are labelled by their title, everything else by name
func (k Kind) labelField() string {
	if k == Events {
		return "title"
	}
	return "name"
}

func (k Kind) wrap(client *Client, data jsonapi.Resource) Resource {
	switch k {
	case Events:
		return newEvent(client, data)
	case People:
		return newPerson(client, data)
	case Venues:
		return newVenue(client, data)
	case Organizations:
		return newOrganization(client, data)
	default:
		return newTeam(client, data)
	}
}
