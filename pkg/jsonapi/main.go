/*
Package jsonapi
Read-only interface for interacting with {json:api} APIs.

Usage:

	import "github.com/techatnyu/tnyu/pkg/jsonapi"

	api := jsonapi.Connection{Host: "https://api.tnyu.org/v3", Token: "XXX"}

	// Lets get a list of things
	events, err := api.List("events")
	for _, event := range events.Data {
	    fmt.Println(event.Attributes["title"])
	}

	// Lets get a single thing
	person, err := api.Get("people", "1")

	// Lets look at its relationships
	relationship, err := person.Related("currentEmployer")
	if relationship.Type == jsonapi.SINGULAR {
	    organization, err := api.Get(
	        relationship.DataSingular.Type, relationship.DataSingular.Id,
	    )
	    ...
	}

Attribute values are decoded with json.Number for numbers so that they can be
read back exactly as the server sent them.
*/
package jsonapi
