package env

import (
	"fmt"
	"os"

	pkgstrings "github.com/hackplatform/client-go/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, fmt.Errorf("env %s not found", key)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, fmt.Errorf("env %s has invalid value: %w", key, err)
	}
	return v, nil
}

func ParseDefault[T pkgstrings.SupportedValueParsingTypes](key string, defaultValue T) T {
	v, err := Parse[T](key)
	if err != nil {
		return defaultValue
	}
	return v
}
