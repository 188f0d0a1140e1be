package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Vector is a fixed-length embedding stored as a JSON text column. A nil
// Vector means the embedding has not been computed yet.
type Vector []float32

// Value implements driver.Valuer. An unset vector is stored as NULL so that
// "has embedding" queries can filter on the column directly.
func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal([]float32(v))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (v *Vector) Scan(src any) error {
	if src == nil {
		*v = nil
		return nil
	}
	var data []byte
	switch s := src.(type) {
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return fmt.Errorf("models: cannot scan %T into Vector", src)
	}
	if len(data) == 0 {
		*v = nil
		return nil
	}
	var out []float32
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("models: invalid vector payload: %w", err)
	}
	*v = out
	return nil
}
