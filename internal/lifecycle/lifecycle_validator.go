package lifecycle

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	missingFieldsPrefix = "missing fields: "
	invalidEmailMessage = "invalid email"
)

// MissingFields returns the required keys absent from r, sorted lexicographically.
func (r OnboardingRequest) MissingFields() []string {
	refs := r.fieldRefs()
	missing := lo.Filter(RequiredOnboardingFields, func(name string, _ int) bool {
		return *refs[name] == nil
	})
	slices.Sort(missing)
	return missing
}

// Onboard checks that every required key is present and returns the employee's full name.
// Only presence is checked: empty strings, malformed emails and past dates all pass.
func Onboard(req OnboardingRequest) Result {
	if missing := req.MissingFields(); len(missing) > 0 {
		return Failure{
			Kind:    KindMissingFields,
			Message: missingFieldsPrefix + strings.Join(missing, ", "),
			Fields:  missing,
		}
	}

	return Success{Value: *req.FirstName + " " + *req.LastName}
}

// Offboard accepts any non-empty email containing '@'.
func Offboard(email string) Result {
	if email == "" || !strings.Contains(email, "@") {
		return Failure{Kind: KindInvalidEmail, Message: invalidEmailMessage}
	}

	return Success{Value: "User " + email + " successfully offboarded"}
}
