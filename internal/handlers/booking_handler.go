package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bemviver/clinic-scheduler/internal/httperr"
	"github.com/bemviver/clinic-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	availability *booking.GetAvailability
	create       *booking.CreateAppointment
}

func NewBookingHandler(
	availability *booking.GetAvailability,
	create *booking.CreateAppointment,
) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		create:       create,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// GET /api/availability?from=YYYY-MM-DD&days=14&service=slug
func (h *BookingHandler) Availability(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			days = n
		}
	}

	result, err := h.availability.Execute(
		c.Request.Context(),
		booking.GetAvailabilityInput{
			From:    c.Query("from"),
			Days:    days,
			Service: c.Query("service"),
		},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": result})
}

// ======================================================
// CREATE
// ======================================================

// POST /api/appointments
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		booking.CreateAppointmentInput{
			Name:    req.Name,
			Phone:   req.Phone,
			Service: req.Service,
			Date:    req.Date,
			Time:    req.Time,
			Notes:   req.Notes,
		},
	)

	if err != nil {
		var ve httperr.ValidationError
		switch {
		case errors.As(err, &ve):
			httperr.Validation(c, ve.Issues)
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", "Horário já ocupado para este serviço.")
		default:
			httperr.Internal(c, "save_failed", "Falha ao salvar.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":          true,
		"appointment": ap,
	})
}
