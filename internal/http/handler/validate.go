package handler

import (
	"reflect"
	"strings"

	"taskdeck/internal/http/respond"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs the validate tags and returns one message per violated
// field, not just the first.
func checkStruct(req any) []respond.FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []respond.FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	out := make([]respond.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, respond.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return "Name must be between 2 and 50 characters"
	case "email":
		return "Please provide a valid email"
	case "password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return "Password must be at least 6 characters long"
	case "title":
		return "Task title is required and must be less than 255 characters"
	case "description":
		return "Description must be less than 1000 characters"
	case "status":
		return "Status must be pending, in_progress, or completed"
	case "priority":
		return "Priority must be low, medium, or high"
	default:
		return fe.Field() + " is invalid"
	}
}
