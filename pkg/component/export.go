package component

import (
	"encoding/json"
	"fmt"
)

// ToMap returns the JSON property bag of c as generic maps and slices,
// for encoders that do not know about Component.
func (c *Component) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode component: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode component: %w", err)
	}
	return out, nil
}

// String renders c as compact JSON.
func (c *Component) String() string {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("<invalid component: %v>", err)
	}
	return string(data)
}
