package validator

import (
	"errors"
	"testing"

	"beautycabin/pkg/logger"
	"beautycabin/pkg/model"
)

func validAppointment() *model.AppointmentCreate {
	return &model.AppointmentCreate{
		Name:    "Dana Levi",
		Phone:   "0501234567",
		Service: "Manicure",
		Date:    "2025-03-14",
		Time:    "10:30",
	}
}

func TestValidate_Valid(t *testing.T) {
	v := NewAppointmentValidator(logger.Nop())

	if err := v.Validate(validAppointment()); err != nil {
		t.Fatalf("expected valid appointment, got %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	v := NewAppointmentValidator(logger.Nop())

	tests := []struct {
		name        string
		mutate      func(a *model.AppointmentCreate)
		wantMissing []string
	}{
		{"missing name", func(a *model.AppointmentCreate) { a.Name = "" }, []string{"name"}},
		{"missing phone", func(a *model.AppointmentCreate) { a.Phone = "" }, []string{"phone"}},
		{"missing service", func(a *model.AppointmentCreate) { a.Service = "" }, []string{"service"}},
		{"missing date", func(a *model.AppointmentCreate) { a.Date = "" }, []string{"date"}},
		{"missing time", func(a *model.AppointmentCreate) { a.Time = "" }, []string{"time"}},
		{
			name:        "everything missing keeps declaration order",
			mutate:      func(a *model.AppointmentCreate) { *a = model.AppointmentCreate{} },
			wantMissing: []string{"name", "phone", "service", "date", "time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAppointment()
			tt.mutate(a)

			err := v.Validate(a)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}

			missing := verrs.Missing()
			if len(missing) != len(tt.wantMissing) {
				t.Fatalf("missing = %v, want %v", missing, tt.wantMissing)
			}
			for i := range missing {
				if missing[i] != tt.wantMissing[i] {
					t.Errorf("missing[%d] = %q, want %q", i, missing[i], tt.wantMissing[i])
				}
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	v := NewAppointmentValidator(logger.Nop())

	err := v.Validate(nil)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 1 {
		t.Fatalf("expected a single validation error, got %v", err)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required", Tag: "required"},
		{Field: "time", Message: "time is required", Tag: "required"},
	}

	want := "validation failed: 2 error(s): [name: name is required; time: time is required]"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := (ValidationErrors{}).Error(); got != "" {
		t.Errorf("empty Error() = %q, want empty", got)
	}
}
