package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/innovatec/registration-api/internal/domain"
	"github.com/innovatec/registration-api/internal/listing"
	"github.com/innovatec/registration-api/internal/repository"
)

var (
	ErrParticipantEmailExists = repository.ErrParticipantEmailExists
	ErrParticipantNotFound    = repository.ErrParticipantNotFound
	ErrInvalidPaymentStatus   = errors.New("invalid payment status code")
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindAll(ctx context.Context) ([]domain.Participant, error)
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
	UpdatePaymentStatus(ctx context.Context, id uint, status domain.PaymentStatus) error
	Delete(ctx context.Context, id uint) error
}

type ParticipantService struct {
	repo ParticipantRepository
}

func NewParticipantService(repo ParticipantRepository) *ParticipantService {
	return &ParticipantService{
		repo: repo,
	}
}

// Register persists a new participant. Creation-time fields are forced
// server-side regardless of what the client sent: payment status starts
// Pending, no certificate has been sent, and a blank role falls back to
// the participant-type code.
func (s *ParticipantService) Register(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	participant.PaymentStatus = domain.StatusPending
	participant.CertificateSent = false
	if strings.TrimSpace(participant.Role) == "" {
		participant.Role = string(participant.Type)
	}
	if participant.Type != domain.TypeStudent {
		participant.ProgramCode = nil
		participant.AdmissionYear = nil
		participant.SequenceNumber = nil
	}

	created, err := s.repo.Create(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// List fetches the full collection and derives the filtered, sorted
// view plus the aggregate counts for the admin table.
func (s *ParticipantService) List(ctx context.Context, query listing.Query) ([]domain.Participant, listing.Counts, error) {
	participants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, listing.Counts{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	view, counts := listing.DeriveView(participants, query)

	return view, counts, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id uint) (domain.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return participant, nil
}

func (s *ParticipantService) ChangePaymentStatus(ctx context.Context, id uint, status domain.PaymentStatus) error {
	if !status.Valid() {
		return ErrInvalidPaymentStatus
	}

	if err := s.repo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return fmt.Errorf("s.repo.UpdatePaymentStatus -> %w", err)
	}

	return nil
}

func (s *ParticipantService) Remove(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
