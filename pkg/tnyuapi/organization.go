package tnyuapi

import (
	"github.com/techatnyu/tnyu/pkg/jsonapi"
	"go.uber.org/zap"
)

type Organization struct {
	record
}

func newOrganization(client *Client, data jsonapi.Resource) *Organization {
	return &Organization{newRecord(client, Organizations, data)}
}

/*
Liaisons fetches every person listed as a liaison of the organization, one
request per person, keeping the order of the relationship. People that cannot
be fetched (typically because they were deleted) are left out of the result
instead of failing the whole call.
*/
func (o *Organization) Liaisons() ([]*Person, error) {
	relationship, err := o.related("liaisons")
	if err != nil {
		return nil, err
	}

	var references []jsonapi.ResourceIdentifier
	switch relationship.Type {
	case jsonapi.SINGULAR:
		references = []jsonapi.ResourceIdentifier{*relationship.DataSingular}
	case jsonapi.PLURAL:
		references = relationship.DataPlural
	}

	result := make([]*Person, 0, len(references))
	for _, reference := range references {
		person, err := o.client.Person(reference.Id)
		if err != nil {
			o.client.logger.Debug("skipping liaison",
				zap.String("organization", o.ID()),
				zap.String("person", reference.Id),
				zap.Error(err))
			continue
		}
		result = append(result, person)
	}
	return result, nil
}
