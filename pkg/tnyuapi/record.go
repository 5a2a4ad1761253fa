package tnyuapi

import (
	"fmt"

	"github.com/techatnyu/tnyu/pkg/jsonapi"
	"github.com/tidwall/gjson"
)

// Resource is what all five resource kinds have in common
type Resource interface {
	Kind() Kind
	ID() string
	// Attribute fails with *UnknownAttributeError when 'name' is absent
	Attribute(name string) (interface{}, error)
	Attributes() map[string]interface{}
	Has(name string) bool
	// Lookup resolves a dotted path (eg 'contact.email') into the attributes
	Lookup(path string) (interface{}, error)
	// Label is the title of an event or the name of anything else
	Label() (string, error)
	String() string
}

// record is the part shared by all resource kinds. It is never modified after
// construction.
type record struct {
	client *Client
	kind   Kind
	data   jsonapi.Resource
}

func newRecord(client *Client, kind Kind, data jsonapi.Resource) record {
	if data.Attributes == nil {
		data.Attributes = make(map[string]interface{})
	}
	return record{client: client, kind: kind, data: data}
}

func (r *record) Kind() Kind {
	return r.kind
}

func (r *record) ID() string {
	return r.data.Id
}

func (r *record) Attribute(name string) (interface{}, error) {
	value, exists := r.data.Attributes[name]
	if !exists {
		return nil, &UnknownAttributeError{Kind: r.kind, Id: r.data.Id, Field: name}
	}
	return value, nil
}

func (r *record) Has(name string) bool {
	_, exists := r.data.Attributes[name]
	return exists
}

// Attributes returns a copy; changing it does not affect the record
func (r *record) Attributes() map[string]interface{} {
	result := make(map[string]interface{}, len(r.data.Attributes))
	for key, value := range r.data.Attributes {
		result[key] = value
	}
	return result
}

/*
Lookup Read a possibly nested attribute using a gjson path. Numbers come back
as float64 here, use Attribute for exact top-level values.

	email, err := person.Lookup("contact.email")
	first, err := event.Lookup("tags.0")
*/
func (r *record) Lookup(path string) (interface{}, error) {
	result := gjson.GetBytes(r.data.RawAttributes, path)
	if !result.Exists() {
		return nil, &UnknownAttributeError{Kind: r.kind, Id: r.data.Id, Field: path}
	}
	return result.Value(), nil
}

// StringAttribute is Attribute for values that are expected to be strings
func (r *record) StringAttribute(name string) (string, error) {
	value, err := r.Attribute(name)
	if err != nil {
		return "", err
	}
	switch typed := value.(type) {
	case string:
		return typed, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(typed), nil
	}
}

func (r *record) Label() (string, error) {
	return r.StringAttribute(r.kind.labelField())
}

func (r *record) String() string {
	label, err := r.Label()
	if err != nil || label == "" {
		return fmt.Sprintf("%s/%s", r.kind, r.data.Id)
	}
	return label
}

func (r *record) related(name string) (*jsonapi.Relationship, error) {
	relationship, err := r.data.Related(name)
	if err != nil {
		return nil, &UnknownAttributeError{Kind: r.kind, Id: r.data.Id, Field: name}
	}
	return relationship, nil
}
