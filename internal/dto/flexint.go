package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts 7, 7.0 or "7" on the wire and always writes a plain number.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("expected integer, got null")
	}

	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	if n, err := strconv.Atoi(raw); err == nil {
		*f = FlexInt(n)
		return nil
	}

	// Whole-valued floats come from clients that send every number as double.
	fl, err := strconv.ParseFloat(raw, 64)
	if err != nil || fl != float64(int(fl)) {
		return fmt.Errorf("expected integer, got %s", b)
	}
	*f = FlexInt(int(fl))
	return nil
}

func (f FlexInt) Int() int { return int(f) }

// OptionalInt returns nil for an absent field.
func OptionalInt(f *FlexInt) *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
