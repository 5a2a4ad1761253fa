package tnyuapi

import (
	"github.com/techatnyu/tnyu/pkg/jsonapi"
)

type Person struct {
	record
}

func newPerson(client *Client, data jsonapi.Resource) *Person {
	return &Person{newRecord(client, People, data)}
}

/*
Organization fetches the person's current employer. A person without one
returns (nil, nil). A list of employers fails with *RelationshipError.
*/
func (p *Person) Organization() (*Organization, error) {
	relationship, err := p.related("currentEmployer")
	if err != nil {
		return nil, err
	}
	switch relationship.Type {
	case jsonapi.NULL:
		return nil, nil
	case jsonapi.SINGULAR:
		return p.client.Organization(relationship.DataSingular.Id)
	default:
		return nil, &RelationshipError{
			Kind: People, Id: p.ID(), Name: "currentEmployer",
		}
	}
}
