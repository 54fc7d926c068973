package wizard

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/innovatec/registration-api/internal/domain"
)

var (
	ErrNotAtConfirmation  = errors.New("submission is only available at the confirmation step")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrDraftInvalid       = errors.New("the draft has validation errors")
)

type Step int

const (
	StepTypeSelection Step = iota
	StepPersonalInfo
	StepInstitutionalInfo
	StepConfirmation
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepTypeSelection:
		return "Type Selection"
	case StepPersonalInfo:
		return "Personal Info"
	case StepInstitutionalInfo:
		return "Institutional Info"
	case StepConfirmation:
		return "Confirmation"
	case StepSubmitted:
		return "Submitted"
	}
	return "Unknown"
}

// Submitter is the external collaborator that persists a finished
// registration. The wizard never talks to the network itself.
type Submitter interface {
	SubmitParticipant(ctx context.Context, sub Submission) error
}

// Submission is the payload posted on a successful submit. Field names
// are part of the API contract and must not change.
type Submission struct {
	ParticipantType domain.ParticipantType `json:"participantType"`
	FullName        string                 `json:"fullName"`
	ProgramCode     *int                   `json:"programCode"`
	AdmissionYear   *int                   `json:"admissionYear"`
	SequenceNumber  *int                   `json:"sequenceNumber"`
	Email           string                 `json:"email"`
	Phone           int64                  `json:"phone"`
	ShirtSize       domain.ShirtSize       `json:"shirtSize"`
	BirthDate       string                 `json:"birthDate"`
	Institution     *string                `json:"institution"`
	Role            string                 `json:"role"`
	QRToken         string                 `json:"qrToken"`
	CertificateSent bool                   `json:"certificateSent"`
	PaymentMethod   domain.PaymentMethod   `json:"paymentMethod"`
	PaymentProof    string                 `json:"paymentProof"`
	PaymentStatus   domain.PaymentStatus   `json:"paymentStatus"`
}

// Wizard drives the four-step registration form. It owns the draft and
// the touched set exclusively; the rendering layer reads them through
// the accessors and mutates only via UpdateField and the transitions.
type Wizard struct {
	submitter Submitter

	step           Step
	draft          Draft
	touched        TouchedSet
	errors         map[string]string
	submitting     bool
	submittedEmail string

	now     func() time.Time
	randInt func(n int) int
}

func New(submitter Submitter) *Wizard {
	return &Wizard{
		submitter: submitter,
		step:      StepTypeSelection,
		draft:     NewDraft(),
		touched:   TouchedSet{},
		now:       time.Now,
		randInt:   rand.Intn,
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Draft() Draft {
	return w.draft
}

// Errors returns the field errors surfaced by the last validation run.
func (w *Wizard) Errors() map[string]string {
	return w.errors
}

// IsSubmitting reports whether a submission is outstanding. The driving
// UI is expected to disable re-entry while it is true.
func (w *Wizard) IsSubmitting() bool {
	return w.submitting
}

// SubmittedEmail returns the email of the submitted registration, for
// the confirmation screen. Empty until the wizard reaches Submitted.
func (w *Wizard) SubmittedEmail() string {
	return w.submittedEmail
}

// UpdateField mutates the draft, marks the field touched and
// re-validates the current step.
func (w *Wizard) UpdateField(name string, value any) error {
	if err := w.draft.set(name, value); err != nil {
		return err
	}

	w.touched.Touch(name)
	w.errors = Validate(w.draft, w.step, w.touched)

	return nil
}

// Advance marks every field of the current step touched and moves to
// the next step if the step validates. With errors it stays put, with
// the errors now visible. A no-op at the confirmation step: leaving it
// forward requires an explicit Submit.
func (w *Wizard) Advance() {
	if w.step >= StepConfirmation {
		return
	}

	w.touched.Touch(fieldsForStep(w.step, w.draft)...)
	w.errors = Validate(w.draft, w.step, w.touched)
	if len(w.errors) == 0 {
		w.step++
		w.errors = Validate(w.draft, w.step, w.touched)
	}
}

// Retreat moves to the previous step unconditionally. Validation never
// blocks backward navigation.
func (w *Wizard) Retreat() {
	if w.step > StepTypeSelection && w.step < StepSubmitted {
		w.step--
		w.errors = Validate(w.draft, w.step, w.touched)
	}
}

// Submit validates the full draft and hands it to the submitter. On
// failure the wizard stays at the confirmation step with the draft
// intact, so the user can correct or retry.
func (w *Wizard) Submit(ctx context.Context) error {
	if w.step != StepConfirmation {
		return ErrNotAtConfirmation
	}
	if w.submitting {
		return ErrSubmissionInFlight
	}

	w.touched.Touch(allFields...)
	w.errors = validateAll(w.draft, w.touched)
	if len(w.errors) > 0 {
		return ErrDraftInvalid
	}

	w.submitting = true
	defer func() { w.submitting = false }()

	if err := w.submitter.SubmitParticipant(ctx, w.buildSubmission()); err != nil {
		return fmt.Errorf("w.submitter.SubmitParticipant -> %w", err)
	}

	w.submittedEmail = w.draft.Email
	w.step = StepSubmitted

	return nil
}

// Reset returns to the first step with a fresh default draft, clearing
// all touched and error state.
func (w *Wizard) Reset() {
	w.step = StepTypeSelection
	w.draft = NewDraft()
	w.touched = TouchedSet{}
	w.errors = nil
	w.submittedEmail = ""
}

// FormattedCarnet renders the student carnet for the summary screen.
func (w *Wizard) FormattedCarnet() string {
	if w.draft.ParticipantType != domain.TypeStudent {
		return "N/A"
	}

	program := w.draft.ProgramCode
	year := w.draft.AdmissionYear
	sequence := w.draft.SequenceNumber
	if program == "" && year == "" && sequence == "" {
		return "unspecified"
	}

	return fmt.Sprintf("%s-%s-%s", program, year, sequence)
}

func (w *Wizard) buildSubmission() Submission {
	sub := Submission{
		ParticipantType: w.draft.ParticipantType,
		FullName:        w.draft.FullName,
		Email:           w.draft.Email,
		Phone:           parseDigits(w.draft.Phone),
		ShirtSize:       w.draft.ShirtSize,
		BirthDate:       w.draft.BirthDate,
		Role:            w.draft.Role,
		QRToken:         fmt.Sprintf("QR-%d-%d", w.now().UnixMilli(), w.randInt(1000)),
		CertificateSent: false,
		PaymentMethod:   w.draft.PaymentMethod,
		PaymentProof:    w.draft.PaymentProof,
		PaymentStatus:   domain.StatusPending,
	}

	if w.draft.ParticipantType == domain.TypeStudent {
		sub.ProgramCode = parseCarnetField(w.draft.ProgramCode)
		sub.AdmissionYear = parseCarnetField(w.draft.AdmissionYear)
		sub.SequenceNumber = parseCarnetField(w.draft.SequenceNumber)
	}

	if w.draft.Institution != "" {
		institution := w.draft.Institution
		sub.Institution = &institution
	}

	if strings.TrimSpace(sub.Role) == "" {
		sub.Role = string(w.draft.ParticipantType)
	}

	return sub
}

// fieldsForStep lists the fields the user can interact with on a step.
// The personal-info set depends on the draft's payment method and
// participant type.
func fieldsForStep(step Step, d Draft) []string {
	switch step {
	case StepTypeSelection:
		return []string{FieldParticipantType}
	case StepPersonalInfo:
		fields := []string{
			FieldFullName,
			FieldEmail,
			FieldPhone,
			FieldBirthDate,
			FieldShirtSize,
			FieldPaymentMethod,
		}
		if d.PaymentMethod == domain.PaymentBankTransfer {
			fields = append(fields, FieldPaymentProof)
		}
		if d.ParticipantType == domain.TypeStudent {
			fields = append(fields, FieldProgramCode, FieldAdmissionYear, FieldSequenceNumber)
		}
		return fields
	case StepInstitutionalInfo:
		return []string{FieldInstitution, FieldRole}
	case StepConfirmation:
		return []string{FieldAcceptedTerms}
	}

	return nil
}

func parseDigits(phone string) int64 {
	digits := nonDigitsExp.ReplaceAllString(phone, "")
	parsed, _ := strconv.ParseInt(digits, 10, 64)

	return parsed
}

func parseCarnetField(value string) *int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	return &parsed
}
