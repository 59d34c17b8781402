package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type envVarType interface {
	string | int | bool | float64
}

// GetEnv returns the value of the environment variable, parsed to the type of the default
// value. An unset or empty variable returns the default. A value that cannot be parsed
// panics, as it is a deployment error.
func GetEnv[T envVarType](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}

	value, err := parseEnv[T](envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: %s", envVarName, err))
	}
	return value
}

func GetRequiredEnv[T envVarType](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}

	value, err := parseEnv[T](envValue)
	if err != nil {
		log.Fatalf("Environment variable %s is not valid: %s", envVarName, err)
	}
	return value
}

// GetEnvList reads a comma separated list, ignoring blank entries.
func GetEnvList(envVarName string, defaultValue string) []string {
	raw := GetEnv(envVarName, defaultValue)
	values := []string{}
	for _, value := range strings.Split(raw, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}

func GetEnvDurationSeconds(envVarName string, defaultSeconds int) time.Duration {
	return time.Duration(GetEnv(envVarName, defaultSeconds)) * time.Second
}

func parseEnv[T envVarType](envValue string) (T, error) {
	var value T
	var parsed any
	var err error

	switch any(value).(type) {
	case string:
		parsed = envValue
	case int:
		parsed, err = strconv.Atoi(envValue)
	case bool:
		parsed, err = strconv.ParseBool(envValue)
	case float64:
		parsed, err = strconv.ParseFloat(envValue, 64)
	}
	if err != nil {
		return value, fmt.Errorf("'%s' cannot be converted to %T: %w", envValue, value, err)
	}
	return parsed.(T), nil
}
