package model_test

import (
	"testing"

	"frontdesk/internal/domains/inspection/model"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Recalculate(t *testing.T) {
	record := model.Record{
		Consumptions: []model.ConsumptionLine{
			{ProductID: "beer", Quantity: 2, UnitPrice: 25},
			{ProductID: "water", Quantity: 3, UnitPrice: 10.1},
		},
		Damages: []model.DamageLine{
			{ItemID: "lamp", Quantity: 1, ChargeAmount: 200},
		},
	}

	record.Recalculate()

	assert.InDelta(t, 50, record.Consumptions[0].Total, 0.001)
	assert.InDelta(t, 30.3, record.Consumptions[1].Total, 0.001)
	assert.InDelta(t, 80.3, record.ConsumptionTotal, 0.001)
	assert.InDelta(t, 200, record.DamageTotal, 0.001)
	assert.InDelta(t, 280.3, record.TotalCharges, 0.001)
}

func TestRecord_Clone(t *testing.T) {
	record := model.Record{Consumptions: []model.ConsumptionLine{{ID: "l1", Quantity: 1}}}

	clone := record.Clone()
	clone.Consumptions[0].Quantity = 5

	assert.Equal(t, 1, record.Consumptions[0].Quantity)
	assert.NotNil(t, clone.Damages)
}

func TestRecord_IsWalkIn(t *testing.T) {
	assert.True(t, model.Record{ReservationID: model.WalkInPrefix + "abc"}.IsWalkIn())
	assert.False(t, model.Record{ReservationID: "r1"}.IsWalkIn())
}
