package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidCharges = errors.New("additional_charges must be a number")

// Charges is a money amount that also accepts numeric strings. null and "" decode to zero.
type Charges float64

func (c *Charges) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*c = 0

		return nil
	}

	var value float64

	switch data[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return ErrInvalidCharges
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			*c = 0

			return nil
		}

		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ErrInvalidCharges
		}

		value = parsed
	default:
		if err := json.Unmarshal(data, &value); err != nil {
			return ErrInvalidCharges
		}
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ErrInvalidCharges
	}

	*c = Charges(value)

	return nil
}

func (c Charges) Float64() float64 {
	return float64(c)
}
