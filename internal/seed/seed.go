// Package seed loads the demo property: three floors of rooms, a handful of guests,
// the housekeeping roster and one confirmed booking.
package seed

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	guestModel "frontdesk/internal/domains/guest/model"
	guestService "frontdesk/internal/domains/guest/service"
	housekeepingModel "frontdesk/internal/domains/housekeeping/model"
	housekeepingService "frontdesk/internal/domains/housekeeping/service"
	reservationService "frontdesk/internal/domains/reservation/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/shared/timezone"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	floors        = 3
	roomsPerFloor = 4
)

var roomTypes = []roomModel.RoomType{
	{ID: "std", Name: "Standard", BaseRate: 800},
	{ID: "dlx", Name: "Deluxe", BaseRate: 1500},
	{ID: "ste", Name: "Suite", BaseRate: 3000},
}

var guests = []guestModel.Guest{
	{ID: "guest-1", Name: "Anita Rahman", Email: "anita@example.com"},
	{ID: "guest-2", Name: "Budi Santoso", Phone: "+62 812 0000 0002"},
	{ID: "guest-3", Name: "Chen Wei", Email: "chen.wei@example.com"},
}

type Seeder struct {
	cfg          *config.Config
	rooms        roomService.Room
	guests       guestService.Guest
	housekeeping housekeepingService.Housekeeping
	reservations reservationService.Reservation
}

func New(
	cfg *config.Config,
	rooms roomService.Room,
	guests guestService.Guest,
	housekeeping housekeepingService.Housekeeping,
	reservations reservationService.Reservation,
) *Seeder {
	return &Seeder{
		cfg:          cfg,
		rooms:        rooms,
		guests:       guests,
		housekeeping: housekeeping,
		reservations: reservations,
	}
}

// Rooms returns the demo rooms, numbered <floor>0<n>. Top floor rooms are suites.
func Rooms() []roomModel.Room {
	rooms := make([]roomModel.Room, 0, floors*roomsPerFloor)

	for floor := 1; floor <= floors; floor++ {
		for n := 1; n <= roomsPerFloor; n++ {
			number := fmt.Sprintf("%d%02d", floor, n)
			rooms = append(rooms, roomModel.Room{
				ID:     number,
				Number: number,
				Floor:  floor,
				Type:   roomTypes[min(floor-1, len(roomTypes)-1)],
				Status: roomModel.StatusVacant,
			})
		}
	}

	return rooms
}

// Run seeds the stores when demo data is enabled.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.App.SeedDemoData {
		return nil
	}

	s.rooms.Seed(Rooms()...)
	s.guests.Seed(guests...)
	s.housekeeping.SeedStaff(
		housekeepingModel.Staff{ID: "staff-1", Name: "Dewi", Role: s.cfg.Housekeeping.Role, Active: true},
		housekeepingModel.Staff{ID: "staff-2", Name: "Eko", Role: s.cfg.Housekeeping.Role, Active: true},
		housekeepingModel.Staff{ID: "staff-3", Name: "Fajar", Role: "reception", Active: true},
	)

	arrival := timezone.Now().Truncate(time.Hour)

	_, err := s.reservations.Create(ctx, reservationService.CreateInput{
		GuestID:     guests[0].ID,
		RoomID:      "102",
		ArrivalAt:   arrival,
		DepartureAt: arrival.Add(48 * time.Hour),
		TotalAmount: 2 * roomTypes[0].BaseRate,
		Confirmed:   true,
	})
	if err != nil {
		return errors.Wrap(err, "seeding demo reservation")
	}

	log.Info().
		Int("rooms", floors*roomsPerFloor).
		Int("guests", len(guests)).
		Msg("Demo data seeded")

	return nil
}
