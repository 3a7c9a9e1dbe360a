package weighted

import "fmt"

// AverageAny computes the weighted average of loosely-typed sequences, such as
// slices decoded from YAML or JSON. A nil element is reported as missing and a
// non-numeric element is rejected; numeric elements are widened to float64
// before delegating to Average.
func AverageAny(values, weights []interface{}) (float64, error) {
	if err := validateShape(len(values), len(weights), values == nil || weights == nil); err != nil {
		return 0, err
	}

	// Missing elements are reported before any conversion so the rule order
	// matches Average.
	for i := range values {
		if values[i] == nil {
			return 0, missingElement("values", i)
		}
		if weights[i] == nil {
			return 0, missingElement("weights", i)
		}
	}

	vs, err := toFloat64Slice("values", values)
	if err != nil {
		return 0, err
	}
	ws, err := toFloat64Slice("weights", weights)
	if err != nil {
		return 0, err
	}

	return Average(vs, ws)
}

func missingElement(sequence string, index int) *InvalidInputError {
	return newInvalidInputWithDetails(CodeMissingElement,
		fmt.Sprintf("values and weights cannot contain missing elements (%s[%d])", sequence, index),
		map[string]interface{}{"sequence": sequence, "index": index})
}

func toFloat64Slice(sequence string, items []interface{}) ([]float64, error) {
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := toFloat64(item)
		if !ok {
			return nil, newInvalidInputWithDetails(CodeNonNumericElement,
				fmt.Sprintf("%s[%d] is not numeric: %T", sequence, i, item),
				map[string]interface{}{"sequence": sequence, "index": i})
		}
		out[i] = f
	}
	return out, nil
}

// toFloat64 widens any Go integer or float kind.
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}
