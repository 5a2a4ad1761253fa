package tnyuapi

import (
	"github.com/techatnyu/tnyu/pkg/jsonapi"
)

func getTestClient(mockData jsonapi.MockData) *Client {
	api := jsonapi.GetTestConnection(mockData)
	return New("XXX", WithConnection(&api))
}

func getEndpoint(responses ...jsonapi.MockResponse) *jsonapi.MockEndpoint {
	requests := make([]jsonapi.MockRequest, 0, len(responses))
	for _, response := range responses {
		requests = append(requests, jsonapi.MockRequest{Response: response})
	}
	return &jsonapi.MockEndpoint{Requests: requests}
}

func ok(text string) jsonapi.MockResponse {
	return jsonapi.MockResponse{Text: text}
}

var notFound = jsonapi.MockResponse{
	Status: 404,
	Text:   `{"errors": [{"status": "404", "code": "not_found"}]}`,
}
