package booking

import "github.com/BruksfildServices01/table-booking/internal/httperr"

var (
	ErrNotFound             = httperr.ErrBusiness(httperr.KindNotFound)
	ErrTableNotFound        = httperr.ErrBusiness("table_not_found")
	ErrSlotConflict         = httperr.ErrBusiness("slot_conflict")
	ErrBookingBusy          = httperr.ErrBusiness("booking_busy")
	ErrDuplicateTableNumber = httperr.ErrBusiness("duplicate_table_number")
)
