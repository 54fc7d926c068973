package wizard

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/innovatec/registration-api/internal/domain"
)

var (
	emailExp            = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneExp            = regexp.MustCompile(`^\d{8,10}$`)
	programExp          = regexp.MustCompile(`^\d{1,4}$`)
	yearExp             = regexp.MustCompile(`^\d{2}$`)
	sequenceExp         = regexp.MustCompile(`^\d{4}$`)
	nonDigitsExp        = regexp.MustCompile(`\D`)
	shirtSizeRule       = validation.In(string(domain.ShirtS), string(domain.ShirtM), string(domain.ShirtL), string(domain.ShirtXL))
	errTermsNotAccepted = "you must accept the terms and conditions"
)

// Validate maps a draft, the active step and the touched set to field
// errors for that step. It is a pure recomputation: the same inputs
// always yield the same map, and a valid step yields an empty map.
// Errors for untouched fields are suppressed.
func Validate(d Draft, step Step, touched TouchedSet) map[string]string {
	errs := map[string]string{}

	switch step {
	case StepTypeSelection, StepInstitutionalInfo:
		// Type selection always has a valid default and every
		// institutional field is optional.
	case StepPersonalInfo:
		check(errs, touched, FieldFullName, d.FullName,
			validation.Required.Error("full name is required"))
		check(errs, touched, FieldEmail, d.Email,
			validation.Required.Error("email is required"),
			validation.Match(emailExp).Error("email is not valid"))
		validatePhone(errs, touched, d.Phone)
		check(errs, touched, FieldBirthDate, d.BirthDate,
			validation.Required.Error("birth date is required"))
		check(errs, touched, FieldShirtSize, string(d.ShirtSize),
			validation.Required.Error("a shirt size must be selected"),
			shirtSizeRule.Error("a shirt size must be selected"))

		// The payment proof is required exactly when paying by bank
		// transfer; cash payments settle with the organizers later.
		if d.PaymentMethod == domain.PaymentBankTransfer {
			check(errs, touched, FieldPaymentProof, d.PaymentProof,
				validation.Required.Error("the payment proof is required"))
		}

		// Carnet subfields only exist for student drafts.
		if d.ParticipantType == domain.TypeStudent {
			check(errs, touched, FieldProgramCode, d.ProgramCode,
				validation.Required.Error("the carnet program code is required"),
				validation.Match(programExp).Error("the program code must be a number of 1 to 4 digits"))
			check(errs, touched, FieldAdmissionYear, d.AdmissionYear,
				validation.Required.Error("the carnet year is required"),
				validation.Match(yearExp).Error("the year must be a number of 2 digits"))
			check(errs, touched, FieldSequenceNumber, d.SequenceNumber,
				validation.Required.Error("the carnet number is required"),
				validation.Match(sequenceExp).Error("the number must be a number of 4 digits"))
		}
	case StepConfirmation:
		if touched.Has(FieldAcceptedTerms) && !d.AcceptedTerms {
			errs[FieldAcceptedTerms] = errTermsNotAccepted
		}
	}

	return errs
}

// validateAll runs every step's rules against the full draft, for the
// final submission gate.
func validateAll(d Draft, touched TouchedSet) map[string]string {
	errs := Validate(d, StepPersonalInfo, touched)
	for field, msg := range Validate(d, StepConfirmation, touched) {
		errs[field] = msg
	}

	return errs
}

func check(errs map[string]string, touched TouchedSet, field, value string, rules ...validation.Rule) {
	if !touched.Has(field) {
		return
	}

	if err := validation.Validate(value, rules...); err != nil {
		errs[field] = err.Error()
	}
}

// The phone keeps its raw form in the draft; only the digits count.
func validatePhone(errs map[string]string, touched TouchedSet, phone string) {
	if !touched.Has(FieldPhone) {
		return
	}

	if phone == "" {
		errs[FieldPhone] = "phone number is required"
		return
	}

	if !phoneExp.MatchString(nonDigitsExp.ReplaceAllString(phone, "")) {
		errs[FieldPhone] = "phone number must have 8 to 10 digits"
	}
}
