package jsonapi

import (
	"encoding/json"
	"fmt"
)

type Resource struct {
	Type          string
	Id            string
	Attributes    map[string]interface{}
	RawAttributes json.RawMessage
	Relationships map[string]*Relationship
	Links         Links
}

const (
	NULL     = iota
	SINGULAR = iota
	PLURAL   = iota
)

type Relationship struct {
	Type         int
	DataSingular *ResourceIdentifier
	DataPlural   []ResourceIdentifier
	Links        Links
}

/*
Related returns the relationship descriptor named 'key'. Resources that came
from a listing may have been sent without relationship data; asking them for
a relationship fails with a *MissingRelationshipError, the same way an unknown
relationship name does.
*/
func (r *Resource) Related(key string) (*Relationship, error) {
	relationship, exists := r.Relationships[key]
	if !exists {
		return nil, &MissingRelationshipError{Type: r.Type, Id: r.Id, Name: key}
	}
	return relationship, nil
}

/*
MapAttributes Map a resource's attributes to a struct. Usage:

	type EventAttributes struct {
	    Title string `json:"title"`
	    ...
	}

	func main() {
	    api := jsonapi.Connection{...}
	    event, _ := api.Get("events", "XXX")
	    var eventAttributes EventAttributes
	    event.MapAttributes(&eventAttributes)

	    fmt.Println(eventAttributes.Title)
	}
*/
func (r *Resource) MapAttributes(result interface{}) error {
	data := r.RawAttributes
	if data == nil {
		var err error
		data, err = json.Marshal(r.Attributes)
		if err != nil {
			return err
		}
	}
	err := json.Unmarshal(data, result)
	if err != nil {
		return fmt.Errorf("could not map attributes of %s %s: %w",
			r.Type, r.Id, err)
	}
	return nil
}
