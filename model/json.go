package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is a string to string mapping stored as a JSON column
type JSONMap map[string]string

// Value ...
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan ...
func (m *JSONMap) Scan(src interface{}) error {
	data, err := jsonColumnBytes(src)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// AttrMap is an arbitrary nested object stored as a JSON column
type AttrMap map[string]interface{}

// Value ...
func (m AttrMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan ...
func (m *AttrMap) Scan(src interface{}) error {
	data, err := jsonColumnBytes(src)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*m = AttrMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// StringList is an ordered list of strings stored as a JSON column
type StringList []string

// Value ...
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan ...
func (l *StringList) Scan(src interface{}) error {
	data, err := jsonColumnBytes(src)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

func jsonColumnBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", src)
	}
}
