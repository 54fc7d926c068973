package request

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/innovatec/registration-api/internal/domain"
)

var (
	emailExp = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	errMissingCarnet       = errors.New("programCode, admissionYear and sequenceNumber are required for students")
	errInvalidCarnet       = errors.New("carnet fields are out of range")
	errMissingPaymentProof = errors.New("paymentProof is required when paying by bank transfer")
)

// RegisterParticipantRequest mirrors the wizard submission payload.
// The same rules the wizard enforces interactively are re-checked here;
// the server never trusts the client copy.
type RegisterParticipantRequest struct {
	ParticipantType string  `json:"participantType"`
	FullName        string  `json:"fullName"`
	ProgramCode     *int    `json:"programCode"`
	AdmissionYear   *int    `json:"admissionYear"`
	SequenceNumber  *int    `json:"sequenceNumber"`
	Email           string  `json:"email"`
	Phone           int64   `json:"phone"`
	ShirtSize       string  `json:"shirtSize"`
	BirthDate       string  `json:"birthDate"`
	Institution     *string `json:"institution"`
	Role            string  `json:"role"`
	QRToken         string  `json:"qrToken"`
	CertificateSent bool    `json:"certificateSent"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentProof    string  `json:"paymentProof"`
	PaymentStatus   string  `json:"paymentStatus"`
}

func (req *RegisterParticipantRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantType, validation.Required, validation.In("E", "C", "I")),
		validation.Field(&req.FullName, validation.Required, validation.Length(1, 150)),
		validation.Field(&req.Email, validation.Required, validation.Match(emailExp)),
		validation.Field(&req.Phone, validation.Required, validation.Min(int64(10000000)), validation.Max(int64(9999999999))),
		validation.Field(&req.ShirtSize, validation.Required, validation.In("S", "M", "L", "XL")),
		validation.Field(&req.BirthDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.QRToken, validation.Required),
		validation.Field(&req.PaymentMethod, validation.Required, validation.In("E", "C")),
		validation.Field(&req.PaymentStatus, validation.In("P", "V", "C", "R")),
	)
	if err != nil {
		return err
	}

	if req.PaymentMethod == string(domain.PaymentBankTransfer) && req.PaymentProof == "" {
		return errMissingPaymentProof
	}

	if req.ParticipantType == string(domain.TypeStudent) {
		if req.ProgramCode == nil || req.AdmissionYear == nil || req.SequenceNumber == nil {
			return errMissingCarnet
		}
		if *req.ProgramCode < 0 || *req.ProgramCode > 9999 ||
			*req.AdmissionYear < 0 || *req.AdmissionYear > 99 ||
			*req.SequenceNumber < 0 || *req.SequenceNumber > 9999 {
			return errInvalidCarnet
		}
	}

	return nil
}

func (req *RegisterParticipantRequest) ToDomain() domain.Participant {
	participant := domain.Participant{
		Type:            domain.ParticipantType(req.ParticipantType),
		FullName:        req.FullName,
		ProgramCode:     req.ProgramCode,
		AdmissionYear:   req.AdmissionYear,
		SequenceNumber:  req.SequenceNumber,
		Email:           req.Email,
		Phone:           req.Phone,
		ShirtSize:       domain.ShirtSize(req.ShirtSize),
		BirthDate:       req.BirthDate,
		Role:            req.Role,
		QRToken:         req.QRToken,
		CertificateSent: req.CertificateSent,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		PaymentProof:    req.PaymentProof,
		PaymentStatus:   domain.PaymentStatus(req.PaymentStatus),
	}

	if req.Institution != nil {
		participant.Institution = *req.Institution
	}

	return participant
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

func (req *UpdatePaymentStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentStatus, validation.Required, validation.In("P", "V", "C", "R")),
	)
}
