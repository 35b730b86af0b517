package dto

import (
	"frontdesk/internal/domains/room/model"
)

type UpdateStatusRequest struct {
	Status            model.Status        `json:"status" validate:"required,enum"`
	CustomStatus      *model.CustomStatus `json:"customStatus,omitempty"`
	ClearCustomStatus bool                `json:"clearCustomStatus"`
}

type QuickActionsResponse struct {
	RoomID  string              `json:"roomId"`
	Status  model.Status        `json:"status"`
	Actions []model.QuickAction `json:"actions"`
}

type RoomResponse struct {
	model.Room
	DisplayStatus string `json:"displayStatus"`
}

func NewRoomResponse(room model.Room) RoomResponse {
	return RoomResponse{
		Room:          room,
		DisplayStatus: room.DisplayStatus(),
	}
}

func NewRoomResponses(rooms []model.Room) []RoomResponse {
	responses := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		responses = append(responses, NewRoomResponse(room))
	}

	return responses
}
