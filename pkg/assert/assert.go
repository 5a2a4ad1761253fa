// Package assert has the few checks the tests need
package assert

import (
	"reflect"
	"strings"
	"testing"
)

// Equal checks if values are deeply equal and of the same type
func Equal(t *testing.T, received interface{}, expected interface{}) bool {
	t.Helper()
	if reflect.DeepEqual(received, expected) {
		return true
	}
	t.Errorf("Received %#v (type %v), expected %#v (type %v)",
		received, reflect.TypeOf(received), expected, reflect.TypeOf(expected))
	return false
}

func True(t *testing.T, value bool, msgAndArgs ...interface{}) bool {
	t.Helper()
	if value {
		return true
	}
	if len(msgAndArgs) == 0 {
		t.Error("Should be true")
		return false
	}
	format, _ := msgAndArgs[0].(string)
	t.Errorf("Should be true: "+format, msgAndArgs[1:]...)
	return false
}

// NoError stops the test if err is not nil
func NoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
}

func Contains(t *testing.T, haystack, needle string) bool {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return true
	}
	t.Errorf("%q does not contain %q", haystack, needle)
	return false
}
