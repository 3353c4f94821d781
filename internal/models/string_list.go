package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList persists a []string column as a JSON document in a TEXT field.
// Exercise choices are its consumer; rows seeded by hand sometimes hold a
// bare string, which Scan accepts as a one-element list.
type StringList []string

// Value implements driver.Valuer. A nil list stores the empty document so the
// column never holds SQL NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	if l == nil {
		return fmt.Errorf("models.StringList: Scan into nil receiver")
	}

	var raw string
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("models.StringList: cannot scan %T", src)
	}

	raw = strings.TrimSpace(raw)
	switch {
	case raw == "" || raw == "null":
		*l = StringList{}
	case strings.HasPrefix(raw, "["):
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return fmt.Errorf("models.StringList: %w", err)
		}
		*l = list
	default:
		// legacy rows hold a bare, possibly JSON-quoted, string
		var single string
		if err := json.Unmarshal([]byte(raw), &single); err == nil {
			raw = single
		}
		if raw == "" {
			*l = StringList{}
		} else {
			*l = StringList{raw}
		}
	}
	return nil
}
