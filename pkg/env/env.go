package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/klwxsrx/adoption-portal/pkg/strings"
)

var ErrNotFound = errors.New("env not found")

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}
	return val
}

// Load reads dotenv files into the process environment. Variables already set are kept,
// missing files are skipped.
func Load(files ...string) error {
	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	return nil
}

func Parse[T strings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		var blank T
		return blank, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	v, err := strings.ParseTypedValue[T](str)
	if err != nil {
		return v, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return v, nil
}

func ParseOptional[T strings.SupportedValueParsingTypes](key string) (*T, error) {
	v, err := Parse[T](key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func ParseDefault[T strings.SupportedValueParsingTypes](key string, fallback T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil || v == nil {
		return fallback, err
	}

	return *v, nil
}
