package strings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	SupportedValueParsingTypes interface {
		bool | int | int64 | uint | float64 | string | time.Duration | time.Time | uuid.UUID
	}
)

func ParseTypedValue[T SupportedValueParsingTypes](value string) (T, error) {
	var result any
	var err error
	var blank T
	switch any(blank).(type) {
	case bool:
		result, err = strconv.ParseBool(value)
	case int:
		result, err = strconv.Atoi(value)
	case int64:
		result, err = strconv.ParseInt(value, 10, 64)
	case uint:
		var v uint64
		v, err = strconv.ParseUint(value, 10, 64)
		result = uint(v)
	case float64:
		result, err = strconv.ParseFloat(value, 64)
	case string:
		result = value
	case time.Duration:
		result, err = time.ParseDuration(value)
	case time.Time:
		result, err = parseTime(value)
	case uuid.UUID:
		result, err = uuid.Parse(value)
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}
	if err != nil {
		return blank, fmt.Errorf("convert to type %T: %w", blank, err)
	}

	return result.(T), nil
}

func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	unixTime, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("RFC3339 or unix time expected: %w", err)
	}
	if unixTime < 0 {
		return time.Time{}, fmt.Errorf("negative unix time %d", unixTime)
	}

	return time.Unix(unixTime, 0), nil
}
