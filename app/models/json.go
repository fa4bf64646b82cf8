package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// jsonValue serializes a typed column into its JSON database representation.
func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// jsonScan deserializes a JSON database value into a typed column.
func jsonScan(dst interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("invalid scan source")
	}
	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, dst)
}

// StringList is a JSON array column of strings.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue(l)
}

func (l *StringList) Scan(value interface{}) error {
	return jsonScan(l, value)
}

// Coordinates is a JSON [latitude, longitude] pair column.
type Coordinates [2]float64

func (c Coordinates) Value() (driver.Value, error) {
	return jsonValue(c)
}

func (c *Coordinates) Scan(value interface{}) error {
	return jsonScan(c, value)
}
