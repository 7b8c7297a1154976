package apidto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"UserRegistration.Username":  "Username must contain min. 4 characters and max. 20 characters",
	"UserRegistration.Password":  "Password must contain min. 3 characters and max. 15 characters",
	"UserRegistration.FirstName": "First name must contain min. 2 characters and max. 20 characters",
	"UserRegistration.LastName":  "Last name must contain min. 2 characters and max. 20 characters",
	"Team.Name":                  "Team name must contain min. 5 characters and max. 20 characters",
	"Team.Description":           "Description is required and must contain max. 30 characters",
	"PlanEntry.Title":            "PlanEntry title must contain min. 4 characters and max. 20 characters",
	"PlanEntry.StartTime":        "Start time is required",
	"PlanEntry.EndTime":          "End time is required",
	"PlanEntry.PlanEntryColor":   "Plan entry color must be one of RED, GREEN, BLUE",
	"LoginRequest.Username":      "Username is required",
	"LoginRequest.Password":      "Password is required",
}

// ValidationMessages переводит ошибки binding-тегов в человекочитаемые сообщения.
// Для ошибок декодирования JSON возвращает nil.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := validationMessages[fe.StructNamespace()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
	}

	return out
}
