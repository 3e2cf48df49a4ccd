package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := jsonTagName(field)
		if name == "" {
			continue
		}
		example[name] = generateExampleValue(field.Type, name)
	}

	return example
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "sound" || fieldName == "watch"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "max_copy_workers":
				return 4
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.Map:
		if t.Name() == "KeyBindingsConfig" {
			return map[string]any{
				"next":     "l",
				"previous": []string{"h", "left"},
			}
		}
	case reflect.String:
		switch fieldName {
		case "db_path":
			return "~/.qcreview/qc_analytics.sqlite"
		case "reviewer":
			return "Alice"
		case "viewer":
			return "feh"
		default:
			return "example"
		}
	}

	return nil
}
