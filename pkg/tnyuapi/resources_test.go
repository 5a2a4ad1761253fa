package tnyuapi

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/techatnyu/tnyu/pkg/assert"
	"github.com/techatnyu/tnyu/pkg/jsonapi"
)

func TestUnknownAttribute(t *testing.T) {
	mockData := jsonapi.MockData{"/people/1": getEndpoint(ok(
		`{"data": {"id": "1", "attributes": {"name": "Ada"}}}`,
	))}
	person, err := getTestClient(mockData).Person("1")
	if err != nil {
		t.Fatal(err)
	}

	_, err = person.Attribute("twitter")
	var e *UnknownAttributeError
	if !errors.As(err, &e) {
		t.Fatalf("Got error '%v', expected *UnknownAttributeError", err)
	}
	assert.Equal(t, e.Kind, People)
	assert.Equal(t, e.Field, "twitter")
	assert.Equal(t, e.Error(), "person object has no attribute 'twitter'")
	assert.True(t, !person.Has("twitter"))
	assert.True(t, person.Has("name"))
}

func TestAttributesRoundTrip(t *testing.T) {
	record := `{"type": "events", "id": "7", "attributes": {
		"title": "Hack Night",
		"capacity": 120,
		"ratio": 0.75,
		"isPublic": true,
		"rsvpUrl": null,
		"tags": ["hack", "night"],
		"details": {"floor": 4, "room": "4A"}
	}}`
	mockData := jsonapi.MockData{"/events": getEndpoint(ok(
		`{"data": [` + record + `]}`,
	))}
	events, err := getTestClient(mockData).Events("")
	if err != nil {
		t.Fatal(err)
	}

	var original struct {
		Attributes map[string]interface{} `json:"attributes"`
	}
	decoder := json.NewDecoder(strings.NewReader(record))
	decoder.UseNumber()
	if err := decoder.Decode(&original); err != nil {
		t.Fatal(err)
	}

	event := events[0]
	for field, expected := range original.Attributes {
		value, err := event.Attribute(field)
		if err != nil {
			t.Errorf("%s: %s", field, err)
			continue
		}
		if diff := cmp.Diff(expected, value); diff != "" {
			t.Errorf("%s changed (-want +got):\n%s", field, diff)
		}
	}
	if diff := cmp.Diff(original.Attributes, event.Attributes()); diff != "" {
		t.Errorf("attributes changed (-want +got):\n%s", diff)
	}
}

func TestAttributesIsACopy(t *testing.T) {
	mockData := jsonapi.MockData{"/teams/1": getEndpoint(ok(
		`{"data": {"id": "1", "attributes": {"name": "Design"}}}`,
	))}
	team, err := getTestClient(mockData).Team("1")
	if err != nil {
		t.Fatal(err)
	}

	attributes := team.Attributes()
	attributes["name"] = "Changed"
	delete(attributes, "name")

	name, err := team.Attribute("name")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, name, "Design")
}

func TestLookup(t *testing.T) {
	mockData := jsonapi.MockData{"/people/1": getEndpoint(ok(
		`{"data": {"id": "1", "attributes": {
			"name": "Ada", "contact": {"email": "ada@nyu.edu"},
			"roles": ["mentor", "speaker"]}}}`,
	))}
	person, err := getTestClient(mockData).Person("1")
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		path     string
		expected interface{}
	}{
		{"name", "Ada"},
		{"contact.email", "ada@nyu.edu"},
		{"roles.1", "speaker"},
		{"roles.#", float64(2)},
	}
	for _, testCase := range testCases {
		value, err := person.Lookup(testCase.path)
		if err != nil {
			t.Errorf("%s: %s", testCase.path, err)
			continue
		}
		assert.Equal(t, value, testCase.expected)
	}

	_, err = person.Lookup("contact.phone")
	var e *UnknownAttributeError
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, e.Field, "contact.phone")
}

func TestLabel(t *testing.T) {
	testCases := []struct {
		kind     Kind
		body     string
		expected string
	}{
		{Events, `{"title": "Demo Days"}`, "Demo Days"},
		{People, `{"name": "Ada"}`, "Ada"},
		{Venues, `{"name": "Courant"}`, "Courant"},
		{Organizations, `{"name": "NYU"}`, "NYU"},
		{Teams, `{"name": "Design"}`, "Design"},
	}
	for _, testCase := range testCases {
		path := "/" + string(testCase.kind) + "/1"
		mockData := jsonapi.MockData{path: getEndpoint(ok(
			`{"data": {"id": "1", "attributes": ` + testCase.body + `}}`,
		))}
		resource, err := getTestClient(mockData).Fetch(testCase.kind, "1")
		if err != nil {
			t.Fatal(err)
		}
		label, err := resource.Label()
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, label, testCase.expected)
		assert.Equal(t, resource.String(), testCase.expected)
	}
}

func TestLabelMissing(t *testing.T) {
	mockData := jsonapi.MockData{"/events/1": getEndpoint(ok(
		`{"data": {"id": "1", "attributes": {"name": "not a title"}}}`,
	))}
	event, err := getTestClient(mockData).Event("1")
	if err != nil {
		t.Fatal(err)
	}

	_, err = event.Label()
	var e *UnknownAttributeError
	if !errors.As(err, &e) {
		t.Fatalf("Got error '%v', expected *UnknownAttributeError", err)
	}
	assert.Equal(t, e.Field, "title")
	assert.Equal(t, event.String(), "events/1")
}

func TestPersonOrganization(t *testing.T) {
	mockData := jsonapi.MockData{
		"/people/1": getEndpoint(ok(`{"data": {
			"type": "people", "id": "1", "attributes": {"name": "Ada"},
			"relationships": {"currentEmployer": {
				"data": {"type": "organizations", "id": "8"}}}}}`,
		)),
		"/organizations/8": getEndpoint(ok(`{"data": {
			"type": "organizations", "id": "8", "attributes": {"name": "NYU"},
			"relationships": {"liaisons": {"data": []}}}}`,
		)),
	}
	client := getTestClient(mockData)
	person, err := client.Person("1")
	if err != nil {
		t.Fatal(err)
	}

	organization, err := person.Organization()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, organization.ID(), "8")
	assert.Equal(t, organization.String(), "NYU")
	assert.Equal(t, mockData.Calls("/organizations/8"), 1)
	assert.Equal(t, mockData.Calls("/people/1"), 1)
}

func TestPersonWithoutOrganization(t *testing.T) {
	mockData := jsonapi.MockData{
		"/people": getEndpoint(ok(`{"data": [{
			"type": "people", "id": "1", "attributes": {"name": "Ada"},
			"relationships": {"currentEmployer": {"data": null}}}]}`,
		)),
	}
	people, err := getTestClient(mockData).People("")
	if err != nil {
		t.Fatal(err)
	}

	organization, err := people[0].Organization()
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, organization == nil)
	assert.Equal(t, len(mockData), 1)
	assert.Equal(t, mockData.Calls("/people"), 1)
}

func TestPersonWithSeveralEmployers(t *testing.T) {
	mockData := jsonapi.MockData{
		"/people/1": getEndpoint(ok(`{"data": {
			"type": "people", "id": "1", "attributes": {"name": "Ada"},
			"relationships": {"currentEmployer": {"data": [
				{"type": "organizations", "id": "8"},
				{"type": "organizations", "id": "9"}]}}}}`,
		)),
	}
	person, err := getTestClient(mockData).Person("1")
	if err != nil {
		t.Fatal(err)
	}

	organization, err := person.Organization()
	var e *RelationshipError
	if !errors.As(err, &e) {
		t.Fatalf("Got error '%v', expected *RelationshipError", err)
	}
	assert.True(t, organization == nil)
	assert.Equal(t, e.Name, "currentEmployer")
	assert.Equal(t, e.Id, "1")
	assert.Equal(t, e.Error(),
		"currentEmployer of person '1' is not a single reference")
	assert.Equal(t, len(mockData), 1)
}

func TestPersonFromListingWithoutRelationships(t *testing.T) {
	mockData := jsonapi.MockData{
		"/people": getEndpoint(ok(`{"data": [{
			"type": "people", "id": "1", "attributes": {"name": "Ada"}}]}`,
		)),
	}
	people, err := getTestClient(mockData).People("")
	if err != nil {
		t.Fatal(err)
	}

	_, err = people[0].Organization()
	var e *UnknownAttributeError
	if !errors.As(err, &e) {
		t.Fatalf("Got error '%v', expected *UnknownAttributeError", err)
	}
	assert.Equal(t, e.Field, "currentEmployer")
}

func TestOrganizationLiaisonsSkipsMissingPeople(t *testing.T) {
	mockData := jsonapi.MockData{
		"/organizations/8": getEndpoint(ok(`{"data": {
			"type": "organizations", "id": "8", "attributes": {"name": "NYU"},
			"relationships": {"liaisons": {"data": [
				{"type": "people", "id": "1"},
				{"type": "people", "id": "2"},
				{"type": "people", "id": "3"}
			]}}}}`,
		)),
		"/people/1": getEndpoint(ok(
			`{"data": {"id": "1", "attributes": {"name": "Ada"}}}`,
		)),
		"/people/2": getEndpoint(notFound),
		"/people/3": getEndpoint(ok(
			`{"data": {"id": "3", "attributes": {"name": "Grace"}}}`,
		)),
	}
	client := getTestClient(mockData)
	organization, err := client.Organization("8")
	if err != nil {
		t.Fatal(err)
	}

	liaisons, err := organization.Liaisons()
	if err != nil {
		t.Fatal(err)
	}

	names := make([]string, 0, len(liaisons))
	for _, person := range liaisons {
		names = append(names, person.String())
	}
	if diff := cmp.Diff([]string{"Ada", "Grace"}, names); diff != "" {
		t.Errorf("wrong liaisons (-want +got):\n%s", diff)
	}
	for _, path := range []string{"/people/1", "/people/2", "/people/3"} {
		assert.Equal(t, mockData.Calls(path), 1)
	}
}

func TestOrganizationWithoutLiaisons(t *testing.T) {
	mockData := jsonapi.MockData{
		"/organizations/8": getEndpoint(ok(`{"data": {
			"id": "8", "attributes": {"name": "NYU"},
			"relationships": {"liaisons": {"data": null}}}}`,
		)),
	}
	organization, err := getTestClient(mockData).Organization("8")
	if err != nil {
		t.Fatal(err)
	}
	liaisons, err := organization.Liaisons()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(liaisons), 0)
}

func TestEventVenue(t *testing.T) {
	mockData := jsonapi.MockData{
		"/events/1": getEndpoint(ok(`{"data": {
			"type": "events", "id": "1", "attributes": {"title": "Demo Days"},
			"relationships": {"venue": {"data": {"type": "venues", "id": "4"}}}}}`,
		)),
		"/venues/4": getEndpoint(ok(`{"data": {
			"type": "venues", "id": "4", "attributes": {"name": "Courant"},
			"relationships": {}}}`,
		)),
	}
	event, err := getTestClient(mockData).Event("1")
	if err != nil {
		t.Fatal(err)
	}

	venue, err := event.Venue()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, venue.ID(), "4")
	assert.Equal(t, venue.String(), "Courant")
	assert.Equal(t, mockData.Calls("/venues/4"), 1)
}

func TestEventVenueMissing(t *testing.T) {
	testCases := []struct {
		name          string
		relationships string
		check         func(error) bool
	}{
		{
			"absent",
			`{}`,
			func(err error) bool {
				var e *UnknownAttributeError
				return errors.As(err, &e) && e.Field == "venue"
			},
		},
		{
			"null",
			`{"venue": {"data": null}}`,
			func(err error) bool {
				var e *NotFoundError
				return errors.As(err, &e) && e.Kind == Venues && e.Reference &&
					e.Error() == "no venue referenced"
			},
		},
	}
	for _, testCase := range testCases {
		mockData := jsonapi.MockData{"/events/1": getEndpoint(ok(
			`{"data": {"id": "1", "attributes": {"title": "Demo Days"},
			           "relationships": ` + testCase.relationships + `}}`,
		))}
		event, err := getTestClient(mockData).Event("1")
		if err != nil {
			t.Fatal(err)
		}
		venue, err := event.Venue()
		assert.True(t, venue == nil, "%s: expected no venue", testCase.name)
		assert.True(t, testCase.check(err),
			"%s: unexpected error '%v'", testCase.name, err)
	}
}
