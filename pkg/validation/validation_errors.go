package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown next to form fields
var FieldLabels = map[string]string{
	"Title":        "Title",
	"Description":  "Description",
	"Location":     "Location",
	"Salary":       "Salary",
	"Requirements": "Requirements",
	"Skills":       "Skills",
	"Deadline":     "Application deadline",
	"Type":         "Type",
	"Name":         "Name",
	"Email":        "Email",
	"Website":      "Website",
	"Industry":     "Industry",
	"Date":         "Date",
	"StartTime":    "Start time",
	"EndTime":      "End time",
	"Organizer":    "Organizer",
	"Provider":     "Provider",
	"CompanyName":  "Company",
}

// fieldKey lowercases the first rune so errors key by the JSON field the
// form binds to.
func fieldKey(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// FieldErrors converts validator errors into a field→message map for inline
// display next to the offending inputs. Non-validator errors collapse into a
// single "_form" entry.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_form"] = err.Error()
		return out
	}

	for _, e := range validationErrors {
		out[fieldKey(e.Field())] = formatSingleError(e)
	}
	return out
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s needs at least %s entry", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s allows at most %s entries", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)

	case "url":
		return fmt.Sprintf("%s is not a valid URL", label)

	case "valid_phone":
		return fmt.Sprintf("%s is not a valid phone number", label)

	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
