package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatec/registration-api/internal/domain"
)

func touchedAll() TouchedSet {
	t := TouchedSet{}
	t.Touch(allFields...)

	return t
}

func validStudentDraft() Draft {
	d := NewDraft()
	d.FullName = "Ana Morales"
	d.Email = "ana@example.com"
	d.Phone = "5555-1234"
	d.BirthDate = "2002-04-18"
	d.PaymentMethod = domain.PaymentBankTransfer
	d.PaymentProof = "data:image/png;base64,aGVsbG8="
	d.ProgramCode = "51"
	d.AdmissionYear = "21"
	d.SequenceNumber = "0042"

	return d
}

func TestValidate_UntouchedFieldsStaySilent(t *testing.T) {
	d := NewDraft() // empty personal info, every rule would fail

	errs := Validate(d, StepPersonalInfo, TouchedSet{})

	assert.Empty(t, errs)
}

func TestValidate_OnlyTouchedFieldsSurface(t *testing.T) {
	d := NewDraft()
	touched := TouchedSet{}
	touched.Touch(FieldEmail)

	errs := Validate(d, StepPersonalInfo, touched)

	require.Len(t, errs, 1)
	assert.Equal(t, "email is required", errs[FieldEmail])
}

func TestValidate_IsIdempotent(t *testing.T) {
	d := validStudentDraft()
	d.Email = "not-an-email"
	touched := touchedAll()

	first := Validate(d, StepPersonalInfo, touched)
	second := Validate(d, StepPersonalInfo, touched)

	assert.Equal(t, first, second)
}

func TestValidate_PersonalInfoRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Draft)
		field   string
		wantErr string
	}{
		{
			name:    "missing full name",
			mutate:  func(d *Draft) { d.FullName = "" },
			field:   FieldFullName,
			wantErr: "full name is required",
		},
		{
			name:    "malformed email",
			mutate:  func(d *Draft) { d.Email = "ana@nowhere" },
			field:   FieldEmail,
			wantErr: "email is not valid",
		},
		{
			name:    "phone with too few digits",
			mutate:  func(d *Draft) { d.Phone = "123-4567" },
			field:   FieldPhone,
			wantErr: "phone number must have 8 to 10 digits",
		},
		{
			name:    "phone with too many digits",
			mutate:  func(d *Draft) { d.Phone = "12345678901" },
			field:   FieldPhone,
			wantErr: "phone number must have 8 to 10 digits",
		},
		{
			name:    "program code too long",
			mutate:  func(d *Draft) { d.ProgramCode = "12345" },
			field:   FieldProgramCode,
			wantErr: "the program code must be a number of 1 to 4 digits",
		},
		{
			name:    "admission year must be two digits",
			mutate:  func(d *Draft) { d.AdmissionYear = "2021" },
			field:   FieldAdmissionYear,
			wantErr: "the year must be a number of 2 digits",
		},
		{
			name:    "sequence number must be four digits",
			mutate:  func(d *Draft) { d.SequenceNumber = "42" },
			field:   FieldSequenceNumber,
			wantErr: "the number must be a number of 4 digits",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validStudentDraft()
			tt.mutate(&d)

			errs := Validate(d, StepPersonalInfo, touchedAll())

			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantErr, errs[tt.field])
		})
	}
}

func TestValidate_PhoneAcceptsFormattingCharacters(t *testing.T) {
	d := validStudentDraft()
	d.Phone = "(555) 512-34"

	errs := Validate(d, StepPersonalInfo, touchedAll())

	assert.Empty(t, errs)
}

func TestValidate_PaymentProofOnlyForBankTransfer(t *testing.T) {
	d := validStudentDraft()
	d.PaymentProof = ""

	errs := Validate(d, StepPersonalInfo, touchedAll())
	require.Len(t, errs, 1)
	assert.Equal(t, "the payment proof is required", errs[FieldPaymentProof])

	d.PaymentMethod = domain.PaymentCashInPerson
	errs = Validate(d, StepPersonalInfo, touchedAll())
	assert.Empty(t, errs)
}

func TestValidate_CarnetOnlyForStudents(t *testing.T) {
	d := validStudentDraft()
	d.ParticipantType = domain.TypeGuest
	d.ProgramCode = ""
	d.AdmissionYear = ""
	d.SequenceNumber = ""

	errs := Validate(d, StepPersonalInfo, touchedAll())

	assert.Empty(t, errs)
}

func TestValidate_OptionalStepsAlwaysPass(t *testing.T) {
	d := NewDraft() // institution and role left empty

	assert.Empty(t, Validate(d, StepTypeSelection, touchedAll()))
	assert.Empty(t, Validate(d, StepInstitutionalInfo, touchedAll()))
}

func TestValidate_ConfirmationRequiresAcceptedTerms(t *testing.T) {
	d := validStudentDraft()

	errs := Validate(d, StepConfirmation, touchedAll())
	require.Len(t, errs, 1)
	assert.Equal(t, errTermsNotAccepted, errs[FieldAcceptedTerms])

	d.AcceptedTerms = true
	assert.Empty(t, Validate(d, StepConfirmation, touchedAll()))
}
