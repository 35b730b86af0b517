package model

import (
	"math"
	"time"

	inspectionModel "frontdesk/internal/domains/inspection/model"
	reservationModel "frontdesk/internal/domains/reservation/model"
	"frontdesk/shared"
)

const (
	EntityName = "checkout"
)

// Stage is the position of the desk's checkout workflow.
type Stage string

const (
	StageSelectingReservation Stage = "selecting_reservation"
	StageReviewingCharges     Stage = "reviewing_charges"
	StageProcessingPayment    Stage = "processing_payment"
	StageCompleted            Stage = "completed"
)

type InvoiceStatus string

const (
	InvoiceUnpaid        InvoiceStatus = "unpaid"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoicePaid          InvoiceStatus = "paid"
)

type Category string

const (
	CategoryRoom    Category = "room"
	CategoryMinibar Category = "minibar"
	CategoryDamages Category = "damages"
)

type Summary struct {
	ReservationID    string                            `json:"reservationId"`
	RoomID           string                            `json:"roomId"`
	GuestID          string                            `json:"guestId"`
	RoomCharge       float64                           `json:"roomCharge"`
	ConsumptionTotal float64                           `json:"consumptionTotal"`
	DamageTotal      float64                           `json:"damageTotal"`
	GrandTotal       float64                           `json:"grandTotal"`
	Consumptions     []inspectionModel.ConsumptionLine `json:"consumptions"`
	Damages          []inspectionModel.DamageLine      `json:"damages"`
	GeneratedAt      time.Time                         `json:"generatedAt"`
}

type InvoiceLine struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
}

type Invoice struct {
	ID            string        `json:"id"`
	ReservationID string        `json:"reservationId"`
	RoomID        string        `json:"roomId"`
	Lines         []InvoiceLine `json:"lines"`
	Amount        float64       `json:"amount"`
	Status        InvoiceStatus `json:"status"`
	IssuedAt      time.Time     `json:"issuedAt"`
}

type Payment struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Method string    `json:"method"`
	PaidAt time.Time `json:"paidAt"`
}

// Session is a snapshot of the in-flight checkout.
type Session struct {
	Stage            Stage                         `json:"stage"`
	Reservation      *reservationModel.Reservation `json:"reservation,omitempty"`
	Readiness        *inspectionModel.Readiness    `json:"readiness,omitempty"`
	Summary          *Summary                      `json:"summary,omitempty"`
	Invoice          *Invoice                      `json:"invoice,omitempty"`
	Payments         []Payment                     `json:"payments"`
	PaidAmount       float64                       `json:"paidAmount"`
	RemainingBalance float64                       `json:"remainingBalance"`
	IsFullyPaid      bool                          `json:"isFullyPaid"`
}

// Record is an archived, completed checkout.
type Record struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservationId"`
	RoomID        string    `json:"roomId"`
	GuestID       string    `json:"guestId"`
	Stage         Stage     `json:"stage"`
	Invoice       Invoice   `json:"invoice"`
	Payments      []Payment `json:"payments"`
	CompletedAt   time.Time `json:"completedAt"`
}

// TotalPaid sums payment amounts.
func TotalPaid(payments []Payment) float64 {
	var total float64
	for _, payment := range payments {
		total += payment.Amount
	}

	return shared.RoundMoney(total)
}

// RemainingBalance is max(0, amount - paid).
func RemainingBalance(amount, paid float64) float64 {
	return math.Max(0, shared.RoundMoney(amount-paid))
}

// InvoiceStatusFor derives the invoice status from what has been paid.
func InvoiceStatusFor(amount, paid float64) InvoiceStatus {
	switch {
	case RemainingBalance(amount, paid) == 0:
		return InvoicePaid
	case paid > 0:
		return InvoicePartiallyPaid
	default:
		return InvoiceUnpaid
	}
}
