package dto

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// EncodeStringSlice marshals a string slice into a jsonb column value.
// A nil slice encodes as an empty array so responses never show null tags.
func EncodeStringSlice(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}

// DecodeStringSlice unmarshals a jsonb column value back into a string slice
func DecodeStringSlice(data datatypes.JSON) []string {
	if len(data) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return []string{}
	}
	return values
}
