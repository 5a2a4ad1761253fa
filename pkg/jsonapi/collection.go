package jsonapi

// Collection is the result of a listing. Pagination links are not followed:
// the collection endpoint is expected to return everything in one response.
type Collection struct {
	Data []Resource
}

// Len returns the number of items in the collection
func (c *Collection) Len() int {
	return len(c.Data)
}
