package lifecycle

const (
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldEmail      = "email"
	FieldDepartment = "department"
	FieldStartDate  = "start_date"
)

// RequiredOnboardingFields lists every key an onboarding request must carry.
var RequiredOnboardingFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldDepartment,
	FieldStartDate,
}

// OnboardingRequest describes a new employee. A nil field is an absent key;
// values are opaque text and are never format-checked.
type OnboardingRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	StartDate  *string `json:"start_date"`
}

// OnboardingRequestFromMap builds a request from an untyped mapping. Unknown keys are ignored.
func OnboardingRequestFromMap(m map[string]string) OnboardingRequest {
	var req OnboardingRequest
	for name, dst := range req.fieldRefs() {
		if v, ok := m[name]; ok {
			*dst = stringPtr(v)
		}
	}
	return req
}

func (r *OnboardingRequest) fieldRefs() map[string]**string {
	return map[string]**string{
		FieldFirstName:  &r.FirstName,
		FieldLastName:   &r.LastName,
		FieldEmail:      &r.Email,
		FieldDepartment: &r.Department,
		FieldStartDate:  &r.StartDate,
	}
}

type OnboardBatchRequest struct {
	Requests []OnboardingRequest `json:"requests" binding:"required,min=1"`
}

type OffboardingRequest struct {
	Email string `json:"email"`
}

type OnboardResponse struct {
	User string `json:"user"`
}

type OffboardResponse struct {
	Message string `json:"message"`
}

type BatchItemError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type OnboardBatchItem struct {
	Index int             `json:"index"`
	Ok    bool            `json:"ok"`
	User  string          `json:"user,omitempty"`
	Error *BatchItemError `json:"error,omitempty"`
}

func stringPtr(v string) *string {
	return &v
}
