package dto

import (
	"frontdesk/internal/domains/inspection/model"
)

type BeginInspectionRequest struct {
	ReservationID string `json:"reservationId"`
}

type AddConsumptionRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type AddDamageRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Notes    string `json:"notes" validate:"max=500"`
}

type CatalogResponse struct {
	Products    []model.Product    `json:"products"`
	DamageItems []model.DamageItem `json:"damageItems"`
}
