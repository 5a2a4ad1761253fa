package jsonapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

/*
Error type for {json:api} errors.

You can inspect the contents of the error response with errors.As.
Example:

	    _, err := api.Get("people", "42")
	    var e *jsonapi.Error
	    if errors.As(err, &e) {
			// "Smartly" inspect the contents of the error
			if e.StatusCode == 404 {
				fmt.Println("Something was not found")
			}
	    }
*/
type Error struct {
	StatusCode int
	Errors     []ErrorItem `json:"errors"`
}

type ErrorItem struct {
	Status string `json:"status,omitempty"`
	Code   string `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
	Source struct {
		Pointer   string `json:"pointer,omitempty"`
		Parameter string `json:"parameter,omitempty"`
	} `json:"source,omitempty"`
}

func (e *Error) Error() string {
	// 400:
	result := make([]string, 0, len(e.Errors)+1)
	result = append(result, fmt.Sprint(e.StatusCode))
	for _, errorItem := range e.Errors {
		result = append(result,
			fmt.Sprintf("%s: %s", errorItem.Code, errorItem.Detail))
	}
	return strings.Join(result, ", ")
}

// NotFound reports whether the server answered with 404
func (e *Error) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func parseErrorResponse(statusCode int, body []byte) *Error {
	if statusCode < 300 {
		return nil
	}
	errorResponse := Error{StatusCode: statusCode}

	// Intentionally ignore parse errors
	_ = json.Unmarshal(body, &errorResponse)

	return &errorResponse
}

type RedirectError struct {
	Location string
}

func (m *RedirectError) Error() string {
	return "jsonapi does not handle redirects. You can access the Location " +
		"header with " +
		"`var e *jsonapi.RedirectError; errors.As(err, &e); e.Location`"
}

// DecodeError is returned when a response body is not the JSON we expected
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode response: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EmptyDataError is returned when a single-resource response has no 'data'
type EmptyDataError struct {
	Path string
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("response from %s has no data", e.Path)
}

type MissingRelationshipError struct {
	Type string
	Id   string
	Name string
}

func (e *MissingRelationshipError) Error() string {
	return fmt.Sprintf("%s %s has no relationship data for '%s'",
		e.Type, e.Id, e.Name)
}
