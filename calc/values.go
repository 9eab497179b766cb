package calc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Values is a stack snapshot, top first. Its JSON form spells the
// non-finite values as the strings "+Inf", "-Inf" and "NaN".
type Values []float64

func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	items := make([]any, len(v))
	for i, x := range v {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			items[i] = strconv.FormatFloat(x, 'g', -1, 64)
		} else {
			items[i] = x
		}
	}
	return json.Marshal(items)
}

func (v *Values) UnmarshalJSON(data []byte) error {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if items == nil {
		*v = nil
		return nil
	}

	values := make(Values, len(items))
	for i, item := range items {
		switch x := item.(type) {
		case float64:
			values[i] = x
		case string:
			parsed, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return fmt.Errorf("stack value %d: %w", i, err)
			}
			values[i] = parsed
		default:
			return fmt.Errorf("stack value %d: unexpected %T", i, item)
		}
	}

	*v = values
	return nil
}
