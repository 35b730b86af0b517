package model_test

import (
	"encoding/json"
	"testing"

	"frontdesk/internal/domains/event/model"
	roomModel "frontdesk/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload(t *testing.T) {
	evt := model.New(model.TypeRoomStatusChanged, model.RoomStatusChanged{
		RoomID:    "101",
		OldStatus: roomModel.StatusOccupied,
		NewStatus: roomModel.StatusCleaning,
	})

	payload, ok := model.Payload[model.RoomStatusChanged](evt)
	require.True(t, ok)
	assert.Equal(t, roomModel.StatusCleaning, payload.NewStatus)

	_, ok = model.Payload[model.CheckoutCompleted](evt)
	assert.False(t, ok)
	assert.Equal(t, "101", evt.RoomID())
	assert.Empty(t, model.New(model.TypeRoomStatusChanged, "raw").RoomID())
}

func TestPayloadWireFields(t *testing.T) {
	tests := []struct {
		name     string
		payload  any
		expected string
	}{
		{
			name:     "checkout completed",
			payload:  model.CheckoutCompleted{ReservationID: "r1", RoomID: "101", GuestID: "g1"},
			expected: `{"reservationId":"r1","roomId":"101","guestId":"g1"}`,
		},
		{
			name:     "inspection completed",
			payload:  model.RoomInspectionCompleted{RoomID: "101", HasConsumption: true},
			expected: `{"roomId":"101","hasConsumption":true,"hasDamage":false}`,
		},
		{
			name:     "room status changed",
			payload:  model.RoomStatusChanged{RoomID: "101", OldStatus: roomModel.StatusOccupied, NewStatus: roomModel.StatusCleaning},
			expected: `{"roomId":"101","oldStatus":"occupied","newStatus":"cleaning"}`,
		},
		{
			name:     "reservation created omits statuses",
			payload:  model.ReservationChanged{ReservationID: "r1", RoomID: "101", GuestID: "g1"},
			expected: `{"reservationId":"r1","roomId":"101","guestId":"g1"}`,
		},
		{
			name:     "housekeeping task completed",
			payload:  model.HousekeepingTaskCompleted{RoomID: "101", TaskType: "cleaning"},
			expected: `{"roomId":"101","taskType":"cleaning"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.payload)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(raw))
		})
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, eventType := range model.Types {
		assert.True(t, eventType.IsValid(), eventType)
	}

	assert.False(t, model.Type("ROOM_DELETED").IsValid())
}
