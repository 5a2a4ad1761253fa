package tnyuapi

import (
	"encoding/json"
	"sort"
	"strings"
)

// identifierField sorts by the record's id when no attribute shadows it
const identifierField = "id"

// sortKey returns the value 'item' is sorted by and whether it has one
func sortKey(item Resource, field string) (interface{}, bool) {
	if item.Has(field) {
		value, _ := item.Attribute(field)
		return value, true
	}
	if field == identifierField {
		return item.ID(), true
	}
	return nil, false
}

// sortResources sorts 'items' in place, stably, by the value of 'field'.
// Nothing is reordered unless every item has the attribute.
func sortResources(items []Resource, field string) error {
	if len(items) == 0 {
		return nil
	}
	if _, exists := sortKey(items[0], field); !exists {
		return &InvalidAttributeError{Kind: items[0].Kind(), Field: field}
	}

	keys := make(map[Resource]interface{}, len(items))
	for _, item := range items {
		value, exists := sortKey(item, field)
		if !exists {
			return &UnknownAttributeError{
				Kind: item.Kind(), Id: item.ID(), Field: field,
			}
		}
		keys[item] = value
	}

	sort.SliceStable(items, func(i, j int) bool {
		return compareValues(keys[items[i]], keys[items[j]]) < 0
	})
	return nil
}

// Values of different JSON types are ordered null < bool < number < string <
// anything else. Objects and arrays compare equal to each other.
func valueRank(value interface{}) int {
	switch value.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case json.Number, float64, int, int64:
		return 2
	case string:
		return 3
	default:
		return 4
	}
}

func compareValues(left, right interface{}) int {
	leftRank, rightRank := valueRank(left), valueRank(right)
	if leftRank != rightRank {
		if leftRank < rightRank {
			return -1
		}
		return 1
	}

	switch leftRank {
	case 1:
		leftBool, rightBool := left.(bool), right.(bool)
		if leftBool == rightBool {
			return 0
		}
		if !leftBool {
			return -1
		}
		return 1
	case 2:
		leftNumber, rightNumber := toFloat(left), toFloat(right)
		if leftNumber < rightNumber {
			return -1
		}
		if leftNumber > rightNumber {
			return 1
		}
		return 0
	case 3:
		return strings.Compare(left.(string), right.(string))
	}
	return 0
}

func toFloat(value interface{}) float64 {
	switch typed := value.(type) {
	case json.Number:
		result, _ := typed.Float64()
		return result
	case float64:
		return typed
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	}
	return 0
}
