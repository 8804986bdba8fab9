package dto

import "github.com/BruksfildServices01/table-booking/internal/models"

type CreateReservationRequest struct {
	TableNumber   *FlexInt `json:"tableNumber" binding:"required"`
	ClientName    string   `json:"clientName" binding:"required"`
	PhoneNumber   string   `json:"phoneNumber" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	SlotTimeStart string   `json:"slotTimeStart" binding:"required"`
	SlotTimeEnd   string   `json:"slotTimeEnd" binding:"required"`
}

type CreateReservationResponse struct {
	ReservationID string `json:"reservationId"`
}

type ReservationListResponse struct {
	Reservations []models.Reservation `json:"reservations"`
}
