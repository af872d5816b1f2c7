package cards

import "fmt"

// ConfigurationError reports an enum or required field outside its allowed
// values. It is raised before any rendering work starts.
type ConfigurationError struct {
	Field string
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}
