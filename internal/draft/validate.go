package draft

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Locations - справочник штатов и округов для проверки формы
type Locations interface {
	DistrictsOf(region string) []string
	HasDistrict(region, district string) bool
}

// FieldError - ошибка конкретного поля формы
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Result - результат проверки формы: пустой список ошибок означает валидную форму
type Result struct {
	Errors []FieldError `json:"errors"`
}

func (r Result) Valid() bool { return len(r.Errors) == 0 }

// ValidationError оборачивает Result для возврата из сервиса
type ValidationError struct {
	Result Result
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Result.Errors))
	for i, fe := range e.Result.Errors {
		fields[i] = fe.Field
	}
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(fields, ", "))
}

// Validator проверяет формы по тегам validate и по справочнику локаций
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	// В ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Текст из одних пробелов не считается заполненным
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &Validator{validate: v}
}

// Edition проверяет форму загрузки выпуска
func (v *Validator) Edition(d EditionDraft, locs Locations) Result {
	res := v.structErrors(d)
	res.Errors = append(res.Errors, locationErrors(d.State, d.District, locs)...)
	return res
}

// Incident проверяет форму сообщения об инциденте
func (v *Validator) Incident(d IncidentDraft, locs Locations) Result {
	res := v.structErrors(d)
	res.Errors = append(res.Errors, locationErrors(d.State, d.District, locs)...)
	return res
}

func (v *Validator) structErrors(s any) Result {
	res := Result{Errors: []FieldError{}}
	err := v.validate.Struct(s)
	if err == nil {
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.Errors = append(res.Errors, FieldError{Field: "", Tag: "invalid", Message: err.Error()})
		return res
	}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return res
}

// locationErrors проверяет пару штат/округ, только если оба поля заполнены
func locationErrors(state, district string, locs Locations) []FieldError {
	if state == "" || district == "" || locs == nil {
		return nil
	}
	if len(locs.DistrictsOf(state)) == 0 {
		return []FieldError{{Field: "state", Tag: "region", Message: fmt.Sprintf("unknown state %q", state)}}
	}
	if !locs.HasDistrict(state, district) {
		return []FieldError{{Field: "district", Tag: "district", Message: fmt.Sprintf("district %q does not belong to %s", district, state)}}
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
}
