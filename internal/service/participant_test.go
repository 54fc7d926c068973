package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatec/registration-api/internal/domain"
	"github.com/innovatec/registration-api/internal/listing"
)

type fakeParticipantRepo struct {
	created       []domain.Participant
	all           []domain.Participant
	err           error
	statusUpdates map[uint]domain.PaymentStatus
	deleted       []uint
}

func (f *fakeParticipantRepo) Create(_ context.Context, p domain.Participant) (domain.Participant, error) {
	if f.err != nil {
		return domain.Participant{}, f.err
	}

	p.ID = uint(len(f.created) + 1)
	f.created = append(f.created, p)

	return p, nil
}

func (f *fakeParticipantRepo) FindAll(_ context.Context) ([]domain.Participant, error) {
	return f.all, f.err
}

func (f *fakeParticipantRepo) FindByID(_ context.Context, id uint) (domain.Participant, error) {
	if f.err != nil {
		return domain.Participant{}, f.err
	}

	for _, p := range f.all {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Participant{}, ErrParticipantNotFound
}

func (f *fakeParticipantRepo) UpdatePaymentStatus(_ context.Context, id uint, status domain.PaymentStatus) error {
	if f.err != nil {
		return f.err
	}

	if f.statusUpdates == nil {
		f.statusUpdates = map[uint]domain.PaymentStatus{}
	}
	f.statusUpdates[id] = status

	return nil
}

func (f *fakeParticipantRepo) Delete(_ context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}

	f.deleted = append(f.deleted, id)

	return nil
}

func intPtr(v int) *int {
	return &v
}

func TestParticipantService_RegisterForcesCreationDefaults(t *testing.T) {
	repo := &fakeParticipantRepo{}
	svc := NewParticipantService(repo)

	created, err := svc.Register(context.Background(), domain.Participant{
		Type:            domain.TypeStudent,
		FullName:        "Ana Morales",
		Email:           "ana@example.com",
		ProgramCode:     intPtr(51),
		AdmissionYear:   intPtr(21),
		SequenceNumber:  intPtr(42),
		PaymentStatus:   domain.StatusConfirmed, // must be ignored
		CertificateSent: true,                   // must be ignored
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.PaymentStatus)
	assert.False(t, created.CertificateSent)
	assert.Equal(t, "E", created.Role, "blank role falls back to the type code")
	require.NotNil(t, created.ProgramCode)
	assert.Equal(t, 51, *created.ProgramCode)
}

func TestParticipantService_RegisterKeepsExplicitRole(t *testing.T) {
	repo := &fakeParticipantRepo{}
	svc := NewParticipantService(repo)

	created, err := svc.Register(context.Background(), domain.Participant{
		Type:     domain.TypeFaculty,
		FullName: "Bruno Díaz",
		Email:    "bruno@example.com",
		Role:     "speaker",
	})

	require.NoError(t, err)
	assert.Equal(t, "speaker", created.Role)
}

func TestParticipantService_RegisterDropsCarnetForNonStudents(t *testing.T) {
	repo := &fakeParticipantRepo{}
	svc := NewParticipantService(repo)

	created, err := svc.Register(context.Background(), domain.Participant{
		Type:           domain.TypeGuest,
		FullName:       "Diego Ramos",
		Email:          "diego@example.com",
		ProgramCode:    intPtr(51),
		AdmissionYear:  intPtr(21),
		SequenceNumber: intPtr(42),
	})

	require.NoError(t, err)
	assert.Nil(t, created.ProgramCode)
	assert.Nil(t, created.AdmissionYear)
	assert.Nil(t, created.SequenceNumber)
}

func TestParticipantService_RegisterSurfacesDuplicateEmail(t *testing.T) {
	repo := &fakeParticipantRepo{err: ErrParticipantEmailExists}
	svc := NewParticipantService(repo)

	_, err := svc.Register(context.Background(), domain.Participant{
		Type:  domain.TypeGuest,
		Email: "dup@example.com",
	})

	assert.ErrorIs(t, err, ErrParticipantEmailExists)
}

func TestParticipantService_ListAppliesTheQuery(t *testing.T) {
	repo := &fakeParticipantRepo{
		all: []domain.Participant{
			{ID: 1, FullName: "Ana", Type: domain.TypeStudent, PaymentStatus: domain.StatusPending},
			{ID: 2, FullName: "Bruno", Type: domain.TypeFaculty, PaymentStatus: domain.StatusConfirmed},
		},
	}
	svc := NewParticipantService(repo)

	view, counts, err := svc.List(context.Background(), listing.Query{Type: "E"})

	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, uint(1), view[0].ID)
	assert.Equal(t, 2, counts.Total, "counts cover the unfiltered collection")
	assert.Equal(t, 1, counts.Confirmed)
}

func TestParticipantService_ChangePaymentStatus(t *testing.T) {
	repo := &fakeParticipantRepo{}
	svc := NewParticipantService(repo)

	err := svc.ChangePaymentStatus(context.Background(), 7, domain.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[7])
}

func TestParticipantService_ChangePaymentStatusRejectsUnknownCodes(t *testing.T) {
	repo := &fakeParticipantRepo{}
	svc := NewParticipantService(repo)

	err := svc.ChangePaymentStatus(context.Background(), 7, "X")

	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
	assert.Empty(t, repo.statusUpdates)
}

func TestParticipantService_Remove(t *testing.T) {
	repo := &fakeParticipantRepo{}
	svc := NewParticipantService(repo)

	require.NoError(t, svc.Remove(context.Background(), 4))
	assert.Equal(t, []uint{4}, repo.deleted)
}

func TestParticipantService_RemoveSurfacesNotFound(t *testing.T) {
	repo := &fakeParticipantRepo{err: ErrParticipantNotFound}
	svc := NewParticipantService(repo)

	err := svc.Remove(context.Background(), 99)

	assert.ErrorIs(t, err, ErrParticipantNotFound)
}
