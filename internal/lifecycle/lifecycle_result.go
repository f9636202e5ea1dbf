package lifecycle

// Kind classifies a validation failure.
type Kind string

const (
	KindMissingFields Kind = "MISSING_FIELDS"
	KindInvalidEmail  Kind = "INVALID_EMAIL"
)

// Result is the outcome of a validation: either Success or Failure.
// Callers branch with a type switch.
type Result interface {
	isResult()
}

type Success struct {
	Value string
}

type Failure struct {
	Kind    Kind
	Message string
	// Fields holds the missing keys for KindMissingFields, sorted.
	Fields []string
}

func (Success) isResult() {}
func (Failure) isResult() {}

func (f Failure) Error() string {
	return f.Message
}
