package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func validStudentRequest() RegisterParticipantRequest {
	return RegisterParticipantRequest{
		ParticipantType: "E",
		FullName:        "Ana Morales",
		ProgramCode:     intPtr(51),
		AdmissionYear:   intPtr(21),
		SequenceNumber:  intPtr(42),
		Email:           "ana@example.com",
		Phone:           55551234,
		ShirtSize:       "M",
		BirthDate:       "2002-04-18",
		QRToken:         "QR-1700000000000-123",
		PaymentMethod:   "C",
		PaymentProof:    "data:image/png;base64,aGVsbG8=",
		PaymentStatus:   "P",
	}
}

func TestRegisterParticipantRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *RegisterParticipantRequest)
		wantErr bool
	}{
		{
			name:    "valid student",
			mutate:  func(req *RegisterParticipantRequest) {},
			wantErr: false,
		},
		{
			name: "valid guest without carnet",
			mutate: func(req *RegisterParticipantRequest) {
				req.ParticipantType = "I"
				req.ProgramCode = nil
				req.AdmissionYear = nil
				req.SequenceNumber = nil
			},
			wantErr: false,
		},
		{
			name: "cash payment without proof",
			mutate: func(req *RegisterParticipantRequest) {
				req.PaymentMethod = "E"
				req.PaymentProof = ""
			},
			wantErr: false,
		},
		{
			name:    "unknown participant type",
			mutate:  func(req *RegisterParticipantRequest) { req.ParticipantType = "X" },
			wantErr: true,
		},
		{
			name:    "malformed email",
			mutate:  func(req *RegisterParticipantRequest) { req.Email = "ana@nowhere" },
			wantErr: true,
		},
		{
			name:    "phone too short",
			mutate:  func(req *RegisterParticipantRequest) { req.Phone = 1234567 },
			wantErr: true,
		},
		{
			name:    "phone too long",
			mutate:  func(req *RegisterParticipantRequest) { req.Phone = 12345678901 },
			wantErr: true,
		},
		{
			name:    "unknown shirt size",
			mutate:  func(req *RegisterParticipantRequest) { req.ShirtSize = "XXL" },
			wantErr: true,
		},
		{
			name:    "malformed birth date",
			mutate:  func(req *RegisterParticipantRequest) { req.BirthDate = "18/04/2002" },
			wantErr: true,
		},
		{
			name:    "missing qr token",
			mutate:  func(req *RegisterParticipantRequest) { req.QRToken = "" },
			wantErr: true,
		},
		{
			name:    "unknown payment status",
			mutate:  func(req *RegisterParticipantRequest) { req.PaymentStatus = "X" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStudentRequest()
			tt.mutate(&req)

			err := req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterParticipantRequest_ValidateBankTransferNeedsProof(t *testing.T) {
	req := validStudentRequest()
	req.PaymentProof = ""

	assert.ErrorIs(t, req.Validate(), errMissingPaymentProof)
}

func TestRegisterParticipantRequest_ValidateStudentNeedsCarnet(t *testing.T) {
	req := validStudentRequest()
	req.AdmissionYear = nil

	assert.ErrorIs(t, req.Validate(), errMissingCarnet)
}

func TestRegisterParticipantRequest_ValidateCarnetRanges(t *testing.T) {
	req := validStudentRequest()
	req.AdmissionYear = intPtr(2021)

	assert.ErrorIs(t, req.Validate(), errInvalidCarnet)
}

func TestRegisterParticipantRequest_ToDomain(t *testing.T) {
	institution := "UCA"
	req := validStudentRequest()
	req.Institution = &institution

	participant := req.ToDomain()

	assert.Equal(t, "Ana Morales", participant.FullName)
	assert.Equal(t, "UCA", participant.Institution)
	require.NotNil(t, participant.ProgramCode)
	assert.Equal(t, 51, *participant.ProgramCode)
}

func TestUpdatePaymentStatusRequest_Validate(t *testing.T) {
	for _, code := range []string{"P", "V", "C", "R"} {
		req := UpdatePaymentStatusRequest{PaymentStatus: code}
		assert.NoError(t, req.Validate(), code)
	}

	assert.Error(t, (&UpdatePaymentStatusRequest{PaymentStatus: "X"}).Validate())
	assert.Error(t, (&UpdatePaymentStatusRequest{}).Validate())
}
