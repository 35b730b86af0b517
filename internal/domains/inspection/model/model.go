package model

import (
	"slices"
	"strings"
	"time"

	"frontdesk/shared"
)

const (
	EntityName        = "inspection"
	LineEntityName    = "inspection line"
	ProductEntityName = "minibar product"
	DamageEntityName  = "damage item"

	// WalkInPrefix marks reservation ids synthesized for inspections without a reservation.
	WalkInPrefix = "walkin-"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

type DamageStatus string

const (
	DamageReported DamageStatus = "reported"
	DamageCharged  DamageStatus = "charged"
)

type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}

type DamageItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ChargeAmount float64 `json:"chargeAmount"`
}

type ConsumptionLine struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type DamageLine struct {
	ID           string       `json:"id"`
	ItemID       string       `json:"itemId"`
	ItemName     string       `json:"itemName"`
	Quantity     int          `json:"quantity"`
	ChargeAmount float64      `json:"chargeAmount"`
	Total        float64      `json:"total"`
	Notes        string       `json:"notes,omitempty"`
	Status       DamageStatus `json:"status"`
}

type Record struct {
	ID               string            `json:"id"`
	RoomID           string            `json:"roomId"`
	ReservationID    string            `json:"reservationId"`
	Consumptions     []ConsumptionLine `json:"consumptions"`
	Damages          []DamageLine      `json:"damages"`
	Status           Status            `json:"status"`
	ConsumptionTotal float64           `json:"consumptionTotal"`
	DamageTotal      float64           `json:"damageTotal"`
	TotalCharges     float64           `json:"totalCharges"`
	StartedAt        time.Time         `json:"startedAt"`
	CompletedAt      *time.Time        `json:"completedAt,omitempty"`
}

func (r Record) IsWalkIn() bool {
	return strings.HasPrefix(r.ReservationID, WalkInPrefix)
}

// Clone returns a copy that shares no line slices with r.
func (r Record) Clone() Record {
	r.Consumptions = slices.Clone(r.Consumptions)
	r.Damages = slices.Clone(r.Damages)

	if r.Consumptions == nil {
		r.Consumptions = []ConsumptionLine{}
	}

	if r.Damages == nil {
		r.Damages = []DamageLine{}
	}

	return r
}

// Recalculate refreshes line totals and the running totals.
func (r *Record) Recalculate() {
	r.ConsumptionTotal = 0
	for i := range r.Consumptions {
		line := &r.Consumptions[i]
		line.Total = shared.RoundMoney(line.UnitPrice * float64(line.Quantity))
		r.ConsumptionTotal += line.Total
	}

	r.DamageTotal = 0
	for i := range r.Damages {
		line := &r.Damages[i]
		line.Total = shared.RoundMoney(line.ChargeAmount * float64(line.Quantity))
		r.DamageTotal += line.Total
	}

	r.ConsumptionTotal = shared.RoundMoney(r.ConsumptionTotal)
	r.DamageTotal = shared.RoundMoney(r.DamageTotal)
	r.TotalCharges = shared.RoundMoney(r.ConsumptionTotal + r.DamageTotal)
}

// Readiness is what checkout needs to know about a room's latest inspection.
// Inspected is false and every total zero when no completed record exists.
type Readiness struct {
	RoomID           string            `json:"roomId"`
	ReservationID    string            `json:"reservationId,omitempty"`
	Inspected        bool              `json:"inspected"`
	RecordID         string            `json:"recordId,omitempty"`
	Consumptions     []ConsumptionLine `json:"consumptions"`
	DamageReports    []DamageLine      `json:"damageReports"`
	ConsumptionTotal float64           `json:"consumptionTotal"`
	DamageTotal      float64           `json:"damageTotal"`
	TotalCharges     float64           `json:"totalCharges"`
	CompletedAt      *time.Time        `json:"completedAt,omitempty"`
}

// DefaultProducts is the minibar catalog the ledger starts with.
var DefaultProducts = []Product{
	{ID: "water", Name: "Mineral Water", UnitPrice: 10},
	{ID: "soda", Name: "Soft Drink", UnitPrice: 15},
	{ID: "juice", Name: "Orange Juice", UnitPrice: 18},
	{ID: "beer", Name: "Beer", UnitPrice: 25},
	{ID: "snack", Name: "Potato Chips", UnitPrice: 20},
	{ID: "chocolate", Name: "Chocolate Bar", UnitPrice: 12},
}

// DefaultDamageItems is the damage catalog the ledger starts with.
var DefaultDamageItems = []DamageItem{
	{ID: "glass", Name: "Broken Glass", ChargeAmount: 30},
	{ID: "towel", Name: "Stained Towel", ChargeAmount: 50},
	{ID: "bedsheet", Name: "Damaged Bedsheet", ChargeAmount: 100},
	{ID: "remote", Name: "Missing TV Remote", ChargeAmount: 150},
	{ID: "lamp", Name: "Broken Lamp", ChargeAmount: 200},
}
