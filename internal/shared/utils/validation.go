package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Request limits
const (
	MaxJSONSize     = 1 * 1024 * 1024 // 1MB - maximum request body size
	MaxQueryLength  = 512
	MaxIDLength     = 128
	MaxParamsDepth  = 4
	MaxArrayLength  = 100_000
	MaxCategoryLen  = 64
	DiscoverDefault = 5
	DiscoverMax     = 20
)

var (
	// ToolIDPattern allows alphanumeric, hyphens, underscores, and dots (for service.tool format)
	ToolIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	// CategoryPattern allows lowercase letters, numbers, and hyphens
	CategoryPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	if value == "" && !required {
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateToolID validates a tool ID field (allows dots for service.tool format)
func ValidateToolID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}

	if id != "" && !ToolIDPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, dots, hyphens, and underscores allowed)", fieldName)
	}

	return nil
}

// ValidateCategory validates a category field
func ValidateCategory(category string, required bool) error {
	if err := ValidateString(category, "category", 0, MaxCategoryLen, required); err != nil {
		return err
	}

	if category != "" && !CategoryPattern.MatchString(category) {
		return fmt.Errorf("category must contain only lowercase letters, numbers, and hyphens")
	}

	return nil
}

// ValidateQuery validates a free-text discovery query
func ValidateQuery(query string) error {
	if err := ValidateString(query, "intent", 1, MaxQueryLength, true); err != nil {
		return err
	}
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("intent must not be blank")
	}
	return nil
}

// ValidateParams bounds the shape of decoded tool parameters
func ValidateParams(params map[string]interface{}) error {
	return checkShape(params, 0)
}

func checkShape(data interface{}, depth int) error {
	if depth > MaxParamsDepth {
		return fmt.Errorf("params nesting depth exceeds maximum %d", MaxParamsDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkShape(value, depth+1); err != nil {
				return err
			}
		}
	case []interface{}:
		if len(v) > MaxArrayLength {
			return fmt.Errorf("params array of %d elements exceeds maximum %d", len(v), MaxArrayLength)
		}
		for _, value := range v {
			if err := checkShape(value, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
