package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-booking/internal/dto"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/httpresp"
	ucReservation "github.com/BruksfildServices01/table-booking/internal/usecase/reservation"
)

type ReservationHandler struct {
	book   *ucReservation.BookTable
	ledger *ucReservation.Ledger
	log    logrus.FieldLogger
}

func NewReservationHandler(
	book *ucReservation.BookTable,
	ledger *ucReservation.Ledger,
	log logrus.FieldLogger,
) *ReservationHandler {
	return &ReservationHandler{book: book, ledger: ledger, log: log}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Fail(c, h.log, httperr.Validation("body", err.Error()))
		return
	}

	id, err := h.book.Execute(c.Request.Context(), ucReservation.BookTableInput{
		TableNumber:   req.TableNumber.Int(),
		ClientName:    req.ClientName,
		PhoneNumber:   req.PhoneNumber,
		Date:          req.Date,
		SlotTimeStart: req.SlotTimeStart,
		SlotTimeEnd:   req.SlotTimeEnd,
	})
	if err != nil {
		httperr.Fail(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.CreateReservationResponse{ReservationID: id})
}

func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.ledger.ListReservations(c.Request.Context())
	if err != nil {
		httperr.Fail(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.ReservationListResponse{Reservations: reservations})
}
