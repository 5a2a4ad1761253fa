package jsonapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Links struct {
	Self    string `json:"self,omitempty"`
	Related string `json:"related,omitempty"`
}

// Used to parse JSON

type PayloadSingular struct {
	Data *PayloadResource `json:"data"`
}

type PayloadPlural struct {
	Data []PayloadResource `json:"data"`
}

type PayloadResource struct {
	Type          string                         `json:"type"`
	Id            string                         `json:"id,omitempty"`
	Attributes    json.RawMessage                `json:"attributes,omitempty"`
	Relationships map[string]PayloadRelationship `json:"relationships,omitempty"`
	Links         Links                          `json:"links,omitempty"`
}

type PayloadRelationship struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Links Links           `json:"links,omitempty"`
}

type ResourceIdentifier struct {
	Type string `json:"type,omitempty"`
	Id   string `json:"id,omitempty"`
}

func payloadToResource(in PayloadResource) (Resource, error) {
	out := Resource{
		Type:          in.Type,
		Id:            in.Id,
		Attributes:    make(map[string]interface{}),
		Relationships: nil,
		Links:         in.Links,
	}

	if len(in.Attributes) > 0 && !isNull(in.Attributes) {
		out.RawAttributes = in.Attributes
		if err := decode(in.Attributes, &out.Attributes); err != nil {
			return out, err
		}
	} else {
		out.RawAttributes = json.RawMessage("{}")
	}

	// A missing 'relationships' member stays nil so that callers can tell
	// "no relationship data was sent" apart from "no relationships exist"
	if in.Relationships != nil {
		out.Relationships = make(map[string]*Relationship, len(in.Relationships))
	}
	for key, value := range in.Relationships {
		relationship, err := payloadToRelationship(value)
		if err != nil {
			return out, fmt.Errorf("relationship %s: %w", key, err)
		}
		out.Relationships[key] = relationship
	}

	return out, nil
}

// Here we look at the first token of 'data' to see whether the relationship
// is null, singular or plural
func payloadToRelationship(in PayloadRelationship) (*Relationship, error) {
	data := bytes.TrimSpace(in.Data)
	if len(data) == 0 || isNull(data) {
		return &Relationship{Type: NULL, Links: in.Links}, nil
	}

	switch data[0] {
	case '{':
		var identifier ResourceIdentifier
		if err := decode(data, &identifier); err != nil {
			return nil, err
		}
		return &Relationship{
			Type:         SINGULAR,
			DataSingular: &identifier,
			Links:        in.Links,
		}, nil
	case '[':
		var identifiers []ResourceIdentifier
		if err := decode(data, &identifiers); err != nil {
			return nil, err
		}
		if identifiers == nil {
			identifiers = []ResourceIdentifier{}
		}
		return &Relationship{
			Type:       PLURAL,
			DataPlural: identifiers,
			Links:      in.Links,
		}, nil
	default:
		return nil, &DecodeError{
			Body: data,
			Err:  fmt.Errorf("unexpected relationship data"),
		}
	}
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
