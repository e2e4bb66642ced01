package sanitized

import (
	"fmt"
	"strconv"
)

// ToText is the textual conversion applied to template data at the API
// boundary. Nothing else in this module converts values to strings.
//
//   string, Content, fmt.Stringer  their textual value
//   []byte                         interpreted as UTF-8
//   bool, integers, floats         formatted with strconv (shortest repr.)
//   nil                            "null"
//   anything else                  fmt.Sprint
func ToText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case Content:
		return x.content
	case fmt.Stringer:
		return x.String()
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	}
	return fmt.Sprint(v)
}
