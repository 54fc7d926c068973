package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrParticipantEmailExists = errors.New("a participant with this email already exists")
	ErrParticipantNotFound    = errors.New("participant not found")
)

type Participant struct {
	ID uint `gorm:"primaryKey"`

	Type           string `gorm:"not null"` // "E", "C" or "I"
	FullName       string `gorm:"not null"`
	ProgramCode    *int
	AdmissionYear  *int
	SequenceNumber *int

	Email     string `gorm:"unique;not null"`
	Phone     int64  `gorm:"not null"`
	ShirtSize string `gorm:"not null"`
	BirthDate string `gorm:"not null"`

	Institution string
	Role        string `gorm:"not null"`

	QRToken         string `gorm:"not null"`
	CertificateSent bool   `gorm:"not null;default:false"`

	PaymentMethod string `gorm:"not null"` // "E" or "C"
	PaymentProof  string
	PaymentStatus string `gorm:"not null;default:P"` // "P", "V", "C" or "R"

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_participants_email"`) {
			return Participant{}, ErrParticipantEmailExists
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindAll(ctx context.Context) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Order("id").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) UpdatePaymentStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("id = ?", id).
		Update("payment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

func (d *ParticipantDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Participant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}
