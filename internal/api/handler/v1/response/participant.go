package response

import (
	"github.com/innovatec/registration-api/internal/domain"
	"github.com/innovatec/registration-api/internal/listing"
)

// ListParticipantsResponse carries the derived view next to the
// aggregate counts over the full collection, so the dashboard
// indicators don't move when filters narrow the rows.
type ListParticipantsResponse struct {
	Participants []domain.Participant `json:"participants"`
	Counts       listing.Counts       `json:"counts"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
