package httpapi

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// External callers send amount and quantity as either JSON numbers or
// strings. Coercion happens here, once, at the boundary: each helper yields
// a typed value or a validation error, and nothing downstream ever sees the
// raw representation.

func parseAmount(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, errors.New("amount is required")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, errors.New("amount must be a number")
		}
		return v, nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errors.New("amount must be a number")
	}
	return v, nil
}

func parseQuantity(raw json.RawMessage) (int32, error) {
	if len(raw) == 0 {
		return 0, errors.New("quantity is required")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return 0, errors.New("quantity must be an integer")
		}
		return int32(v), nil
	}

	var v int64
	if err := json.Unmarshal(raw, &v); err != nil || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, errors.New("quantity must be an integer")
	}
	return int32(v), nil
}

// invalidPathID reports whether a path-embedded identifier is unusable:
// blank after trimming, or one of the sentinel strings browser clients send
// for a missing value.
func invalidPathID(id string) bool {
	id = strings.TrimSpace(id)
	return id == "" || id == "undefined" || id == "null"
}
