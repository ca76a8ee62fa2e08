package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"beautycabin/pkg/logger"
	"beautycabin/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"-"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Missing lists the fields that failed the required check, in declaration order.
func (v ValidationErrors) Missing() []string {
	missing := make([]string, 0, len(v))
	for _, err := range v {
		if err.Tag == "required" {
			missing = append(missing, err.Field)
		}
	}
	return missing
}

type AppointmentValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewAppointmentValidator(log *logger.Logger) *AppointmentValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	log.Info("Appointment validator initialized successfully")

	return &AppointmentValidator{
		validate: v,
		logger:   log,
	}
}

// jsonFieldName reports fields by their wire name so clients can map errors
// back to form inputs.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func (v *AppointmentValidator) Validate(appointment *model.AppointmentCreate) error {
	if appointment == nil {
		return ValidationErrors{{Field: "body", Message: "appointment is required", Tag: "required"}}
	}
	if err := v.validate.Struct(appointment); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func requiredMessage(field string) string {
	return fmt.Sprintf("%s is required", field)
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		if err.Tag() == "required" {
			message = requiredMessage(err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
			Tag:     err.Tag(),
		})
	}

	return validationErrors
}
