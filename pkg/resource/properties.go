package resource

import (
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var props = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]+))?}`)

// init loads application properties from YAML
func init() {
	var value, ok = os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	Init(value)
}

func Init(filepath string) {
	props.SetConfigFile(filepath)
	props.SetConfigType("yml")

	if err := props.ReadInConfig(); err != nil {
		log.Printf("Fail to read properties: %v", err)
		return
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", props.AllSettings(), resolved)

	if err := props.MergeConfigMap(resolved); err != nil {
		log.Printf("Error to load application properties: %v", err)
	}
}

// parsePropertiesMap reads the YAML tree recursively, resolving ${ENV:default} values
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolved := resolveEnvVariable(v); resolved != nil {
				result[fullKey] = resolved
			} else {
				result[fullKey] = v
			}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable checks if the value is an environment variable pattern and resolves it
func resolveEnvVariable(value string) interface{} {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return nil
	}

	envName := matches[1]
	defaultValue := ""
	if len(matches) > 2 {
		defaultValue = matches[2]
	}

	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue
	}
	if defaultValue != "" {
		return defaultValue
	}
	return nil
}

func Get(key string) any {
	return props.Get(key)
}

func GetString(key string) string {
	return props.GetString(key)
}

// GetStringOrDefault returns the property value or the given default when absent.
func GetStringOrDefault(key, defaultValue string) string {
	value := props.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetBool(key string) bool {
	return props.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return props.GetDuration(key)
}

func GetInt(key string) int {
	return props.GetInt(key)
}

func GetInt64(key string) int64 {
	return props.GetInt64(key)
}

func GetFloat64(key string) float64 {
	return props.GetFloat64(key)
}
