package domain

import "time"

// Single-letter codes are the wire and storage representation,
// kept compatible with the original registration database.
type ParticipantType string

const (
	TypeStudent ParticipantType = "E"
	TypeFaculty ParticipantType = "C"
	TypeGuest   ParticipantType = "I"
)

func (t ParticipantType) Valid() bool {
	switch t {
	case TypeStudent, TypeFaculty, TypeGuest:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCashInPerson PaymentMethod = "E"
	PaymentBankTransfer PaymentMethod = "C"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCashInPerson || m == PaymentBankTransfer
}

type PaymentStatus string

const (
	StatusPending             PaymentStatus = "P"
	StatusPendingVerification PaymentStatus = "V"
	StatusConfirmed           PaymentStatus = "C"
	StatusRejected            PaymentStatus = "R"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPendingVerification, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}

type ShirtSize string

const (
	ShirtS  ShirtSize = "S"
	ShirtM  ShirtSize = "M"
	ShirtL  ShirtSize = "L"
	ShirtXL ShirtSize = "XL"
)

func (s ShirtSize) Valid() bool {
	switch s {
	case ShirtS, ShirtM, ShirtL, ShirtXL:
		return true
	}
	return false
}

// Participant is the persisted registration record. Carnet fields are
// nil for non-student participants.
type Participant struct {
	ID              uint            `json:"id"`
	Type            ParticipantType `json:"participantType"`
	FullName        string          `json:"fullName"`
	ProgramCode     *int            `json:"programCode"`
	AdmissionYear   *int            `json:"admissionYear"`
	SequenceNumber  *int            `json:"sequenceNumber"`
	Email           string          `json:"email"`
	Phone           int64           `json:"phone"`
	ShirtSize       ShirtSize       `json:"shirtSize"`
	BirthDate       string          `json:"birthDate"`
	Institution     string          `json:"institution"`
	Role            string          `json:"role"`
	QRToken         string          `json:"qrToken"`
	CertificateSent bool            `json:"certificateSent"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentProof    string          `json:"paymentProof,omitempty"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	RegisteredAt    time.Time       `json:"registeredAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
