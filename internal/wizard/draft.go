package wizard

import "github.com/innovatec/registration-api/internal/domain"

// Field names shared by the draft, the touched set, the validation
// engine and the error map. They match the submission payload keys.
const (
	FieldParticipantType = "participantType"
	FieldFullName        = "fullName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldBirthDate       = "birthDate"
	FieldShirtSize       = "shirtSize"
	FieldPaymentMethod   = "paymentMethod"
	FieldPaymentProof    = "paymentProof"
	FieldInstitution     = "institution"
	FieldRole            = "role"
	FieldProgramCode     = "programCode"
	FieldAdmissionYear   = "admissionYear"
	FieldSequenceNumber  = "sequenceNumber"
	FieldAcceptedTerms   = "acceptedTerms"
)

var allFields = []string{
	FieldParticipantType,
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldBirthDate,
	FieldShirtSize,
	FieldPaymentMethod,
	FieldPaymentProof,
	FieldInstitution,
	FieldRole,
	FieldProgramCode,
	FieldAdmissionYear,
	FieldSequenceNumber,
	FieldAcceptedTerms,
}

// Draft is the in-progress registration. Text inputs stay strings until
// submission; the carnet subfields only matter for student drafts.
type Draft struct {
	ParticipantType domain.ParticipantType
	FullName        string
	Email           string
	Phone           string
	BirthDate       string
	ShirtSize       domain.ShirtSize
	PaymentMethod   domain.PaymentMethod
	PaymentProof    string
	Institution     string
	Role            string
	ProgramCode     string
	AdmissionYear   string
	SequenceNumber  string
	AcceptedTerms   bool
}

// NewDraft returns the default draft presented on a fresh form.
func NewDraft() Draft {
	return Draft{
		ParticipantType: domain.TypeStudent,
		PaymentMethod:   domain.PaymentBankTransfer,
		ShirtSize:       domain.ShirtM,
	}
}

func (d *Draft) set(name string, value any) error {
	if name == FieldAcceptedTerms {
		accepted, ok := value.(bool)
		if !ok {
			return &FieldTypeError{Field: name, Want: "bool"}
		}
		d.AcceptedTerms = accepted
		return nil
	}

	text, ok := value.(string)
	if !ok {
		return &FieldTypeError{Field: name, Want: "string"}
	}

	switch name {
	case FieldParticipantType:
		d.ParticipantType = domain.ParticipantType(text)
	case FieldFullName:
		d.FullName = text
	case FieldEmail:
		d.Email = text
	case FieldPhone:
		d.Phone = text
	case FieldBirthDate:
		d.BirthDate = text
	case FieldShirtSize:
		d.ShirtSize = domain.ShirtSize(text)
	case FieldPaymentMethod:
		d.PaymentMethod = domain.PaymentMethod(text)
	case FieldPaymentProof:
		d.PaymentProof = text
	case FieldInstitution:
		d.Institution = text
	case FieldRole:
		d.Role = text
	case FieldProgramCode:
		d.ProgramCode = text
	case FieldAdmissionYear:
		d.AdmissionYear = text
	case FieldSequenceNumber:
		d.SequenceNumber = text
	default:
		return &UnknownFieldError{Field: name}
	}

	return nil
}

// TouchedSet records the fields the user has interacted with.
// Validation errors only surface for touched fields.
type TouchedSet map[string]bool

func (t TouchedSet) Touch(names ...string) {
	for _, name := range names {
		t[name] = true
	}
}

func (t TouchedSet) Has(name string) bool {
	return t[name]
}

type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return "unknown field " + e.Field
}

type FieldTypeError struct {
	Field string
	Want  string
}

func (e *FieldTypeError) Error() string {
	return "field " + e.Field + " expects a " + e.Want + " value"
}
