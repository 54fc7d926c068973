package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/innovatec/registration-api/internal/api/handler/v1/request"
	"github.com/innovatec/registration-api/internal/api/handler/v1/response"
	"github.com/innovatec/registration-api/internal/domain"
	"github.com/innovatec/registration-api/internal/listing"
	"github.com/innovatec/registration-api/internal/service"
)

type ParticipantService interface {
	Register(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	List(ctx context.Context, query listing.Query) ([]domain.Participant, listing.Counts, error)
	GetParticipant(ctx context.Context, id uint) (domain.Participant, error)
	ChangePaymentStatus(ctx context.Context, id uint, status domain.PaymentStatus) error
	Remove(ctx context.Context, id uint) error
}

type ParticipantHandler struct {
	svc ParticipantService
}

func NewParticipantHandler(svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleRegisterParticipant godoc
// @Summary      Register a participant
// @Description  Creates a participant record from a finished registration wizard submission
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterParticipantRequest true "request body"
// @Success      201      {object}  domain.Participant
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /participants [post]
func (h *ParticipantHandler) HandleRegisterParticipant(ctx *gin.Context) {
	var req request.RegisterParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Register(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrParticipantEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrParticipantEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleRegisterParticipant -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListParticipants godoc
// @Summary      List participants
// @Description  Returns the filtered, sorted participant view plus aggregate per-status counts
// @Tags         participants
// @Produce      json
// @Param        search          query     string false "substring match on name, email or institution"
// @Param        type            query     string false "participant type code or 'all'"
// @Param        status          query     string false "payment status code or 'all'"
// @Param        paymentMethod   query     string false "payment method code or 'all'"
// @Param        sortBy          query     string false "sort field"
// @Param        sortDir         query     string false "asc or desc"
// @Success      200  {object}  response.ListParticipantsResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleListParticipants(ctx *gin.Context) {
	query := listing.Query{
		Search:        ctx.Query("search"),
		Type:          ctx.DefaultQuery("type", listing.FilterAll),
		Status:        ctx.DefaultQuery("status", listing.FilterAll),
		PaymentMethod: ctx.DefaultQuery("paymentMethod", listing.FilterAll),
		Sort: listing.SortSpec{
			Field:     listing.SortField(ctx.Query("sortBy")),
			Direction: parseSortDirection(ctx.Query("sortDir")),
		},
	}

	participants, counts, err := h.svc.List(ctx.Request.Context(), query)
	if err != nil {
		err = fmt.Errorf("v1.HandleListParticipants -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ListParticipantsResponse{
		Participants: participants,
		Counts:       counts,
	})
}

// HandleUpdatePaymentStatus godoc
// @Summary      Update payment status
// @Description  Sets the payment status of a participant to one of P, V, C or R
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        participantID  path      int true "participant ID"
// @Param        request        body      request.UpdatePaymentStatusRequest true "request body"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/updatePaymentStatus/{participantID} [patch]
// @Security BearerAuth
func (h *ParticipantHandler) HandleUpdatePaymentStatus(ctx *gin.Context) {
	id, err := parseParticipantID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdatePaymentStatusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err = h.svc.ChangePaymentStatus(ctx.Request.Context(), id, domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", id))
			return
		}
		if errors.Is(err, service.ErrInvalidPaymentStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidPaymentStatus))
			return
		}

		err = fmt.Errorf("v1.HandleUpdatePaymentStatus -> h.svc.ChangePaymentStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "payment status updated"})
}

// HandleDeleteParticipant godoc
// @Summary      Delete a participant
// @Tags         participants
// @Produce      json
// @Param        participantID  path  int true "participant ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{participantID} [delete]
// @Security BearerAuth
func (h *ParticipantHandler) HandleDeleteParticipant(ctx *gin.Context) {
	id, err := parseParticipantID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.Remove(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteParticipant -> h.svc.Remove -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseParticipantID(ctx *gin.Context) (uint, error) {
	raw := ctx.Param("participantID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid participant ID %q", raw)
	}

	return uint(id), nil
}

func parseSortDirection(raw string) listing.SortDirection {
	switch raw {
	case "asc":
		return listing.SortAscending
	case "desc":
		return listing.SortDescending
	}

	return listing.SortUnset
}
