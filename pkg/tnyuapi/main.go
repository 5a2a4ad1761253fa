/*
Package tnyuapi
Client for the Tech@NYU API. Events, people, venues, organizations and teams
are exposed as read-only snapshots of their attributes, with relationships
resolved on demand.

Usage:

	import "github.com/techatnyu/tnyu/pkg/tnyuapi"

	client := tnyuapi.New(os.Getenv("TNYU_API_KEY"))

	people, err := client.People("name")
	for _, person := range people {
	    organization, err := person.Organization()
	    if err != nil { ... }
	    if organization == nil {
	        fmt.Println(person, "has no organization")
	        continue
	    }
	    fmt.Println(person, "works at", organization)
	}

	event, err := client.Event("54c5b0d1b8b9b1d5a1f3d2b3")
	title, err := event.Attribute("title")
	venue, err := event.Venue()

Every relationship accessor performs a new request; nothing is cached.
*/
package tnyuapi
