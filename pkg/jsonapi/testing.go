package jsonapi

import "fmt"

type CapturedRequest struct {
	Method string
}
type MockResponse struct {
	Text     string
	Status   int
	Redirect string
}

type MockRequest struct {
	Response MockResponse
	Request  CapturedRequest
}

type MockEndpoint struct {
	Requests []MockRequest
	Count    int
}

type MockData map[string]*MockEndpoint

func (mockData *MockData) Get(path string) *MockRequest {
	endpoint, exists := (*mockData)[path]
	if !exists {
		return nil
	}
	if endpoint.Count >= len(endpoint.Requests) {
		return nil
	}
	endpoint.Count++
	return &endpoint.Requests[endpoint.Count-1]
}

// Calls returns how many times 'path' was requested
func (mockData *MockData) Calls(path string) int {
	endpoint, exists := (*mockData)[path]
	if !exists {
		return 0
	}
	return endpoint.Count
}

/*
GetTestConnection returns a Connection that answers from 'mockData' instead of
the network. A response with a Status of 300 or more is turned into an *Error
the same way a real response would be.
*/
func GetTestConnection(mockData MockData) Connection {
	return Connection{
		RequestMethod: func(method, path string) ([]byte, error) {
			mockRequest := mockData.Get(path)
			if mockRequest == nil {
				return nil, fmt.Errorf("%s not found", path)
			}
			mockRequest.Request.Method = method

			if mockRequest.Response.Redirect != "" {
				return nil, &RedirectError{mockRequest.Response.Redirect}
			}
			errorResponse := parseErrorResponse(
				mockRequest.Response.Status, []byte(mockRequest.Response.Text),
			)
			if errorResponse != nil {
				return nil, errorResponse
			}
			return []byte(mockRequest.Response.Text), nil
		},
	}
}
