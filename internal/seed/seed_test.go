package seed_test

import (
	"context"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	eventService "frontdesk/internal/domains/event/service"
	guestService "frontdesk/internal/domains/guest/service"
	housekeepingService "frontdesk/internal/domains/housekeeping/service"
	reservationService "frontdesk/internal/domains/reservation/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRooms(t *testing.T) {
	rooms := seed.Rooms()

	require.Len(t, rooms, 12)
	assert.Equal(t, "101", rooms[0].Number)
	assert.Equal(t, "304", rooms[len(rooms)-1].Number)
	assert.Equal(t, 3, rooms[len(rooms)-1].Floor)
	assert.Equal(t, "Suite", rooms[len(rooms)-1].Type.Name)
}

func TestSeeder_Run(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		rooms   int
	}{
		{name: "disabled", enabled: false, rooms: 0},
		{name: "enabled", enabled: true, rooms: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.App.SeedDemoData = tt.enabled

			otel := mocks.NewOtel()
			bus := eventService.New(cfg, otel)
			guests := guestService.New(otel)
			rooms := roomService.New(bus, guests, otel)
			housekeeping := housekeepingService.New(cfg, bus, rooms, otel)
			reservations := reservationService.New(bus, otel)

			t.Cleanup(func() {
				reservations.Close()
				housekeeping.Close()
				rooms.Close()
			})

			ctx := context.Background()
			require.NoError(t, seed.New(cfg, rooms, guests, housekeeping, reservations).Run(ctx))

			list, err := rooms.List(ctx, roomModel.Filter{})
			require.NoError(t, err)
			assert.Len(t, list, tt.rooms)

			if !tt.enabled {
				assert.Empty(t, guests.List(ctx))

				return
			}

			reserved, err := rooms.Get(ctx, "102")
			require.NoError(t, err)
			assert.Equal(t, roomModel.StatusReserved, reserved.Status)
			assert.Len(t, guests.List(ctx), 3)
			assert.Len(t, housekeeping.Staff(ctx), 3)
		})
	}
}
