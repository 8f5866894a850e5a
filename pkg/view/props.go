package view

// Props holds read-only component and element properties.
type Props map[string]any

// String returns the string value for key, or "" when absent or not a string.
func (p Props) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// Int returns the int value for key, or 0 when absent or not an int.
func (p Props) Int(key string) int {
	if v, ok := p[key].(int); ok {
		return v
	}
	return 0
}

// Bool returns the bool value for key, or false when absent or not a bool.
func (p Props) Bool(key string) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return false
}

// Float returns the float64 value for key, or 0 when absent or not a float64.
func (p Props) Float(key string) float64 {
	if v, ok := p[key].(float64); ok {
		return v
	}
	return 0
}
