package dto

type SelectReservationRequest struct {
	ReservationID string `json:"reservationId" validate:"required"`
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required"`
}
