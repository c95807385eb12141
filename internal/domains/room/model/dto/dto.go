package dto

import (
	"horizon/internal/domains/room/model"
	"horizon/shared"
	gDto "horizon/shared/dto"
	gModel "horizon/shared/model"
	"horizon/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber       string   `json:"room_number"       validate:"required,max=20"`
	Type             string   `json:"type"              validate:"required"`
	Title            string   `json:"title"             validate:"required,max=100"`
	Description      string   `json:"description"       validate:"omitempty,max=1000"`
	Price            float64  `json:"price"             validate:"required,min=0"`
	CapacityAdults   int      `json:"capacity_adults"   validate:"required,min=1"`
	CapacityChildren int      `json:"capacity_children" validate:"omitempty,min=0"`
	BedType          string   `json:"bed_type"          validate:"omitempty,oneof=single double queen king twin"`
	Size             float64  `json:"size"              validate:"omitempty,min=0"`
	Floor            int      `json:"floor"             validate:"omitempty,min=0"`
	Amenities        []string `json:"amenities"         validate:"omitempty"`
	IsAvailable      *bool    `json:"is_available"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(roomType model.RoomType, user string) model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Room{
		ID:               uuid.NewString(),
		RoomNumber:       c.RoomNumber,
		Type:             roomType,
		Title:            c.Title,
		Description:      c.Description,
		Price:            c.Price,
		CapacityAdults:   c.CapacityAdults,
		CapacityChildren: c.CapacityChildren,
		BedType:          c.BedType,
		Size:             c.Size,
		Floor:            c.Floor,
		Amenities:        c.Amenities,
		IsAvailable:      available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber       string   `db:"room_number"       json:"room_number"       validate:"omitempty,max=20"`
	Type             string   `json:"type"            validate:"omitempty"`
	Title            string   `db:"title"             json:"title"             validate:"omitempty,max=100"`
	Description      string   `db:"description"       json:"description"       validate:"omitempty,max=1000"`
	Price            *float64 `db:"price"             json:"price"             validate:"omitempty,min=0"`
	CapacityAdults   *int     `db:"capacity_adults"   json:"capacity_adults"   validate:"omitempty,min=1"`
	CapacityChildren *int     `db:"capacity_children" json:"capacity_children" validate:"omitempty,min=0"`
	BedType          string   `db:"bed_type"          json:"bed_type"          validate:"omitempty,oneof=single double queen king twin"`
	Size             *float64 `db:"size"              json:"size"              validate:"omitempty,min=0"`
	Floor            *int     `db:"floor"             json:"floor"             validate:"omitempty,min=0"`
	Amenities        []string `json:"amenities"       validate:"omitempty"`
	IsAvailable      *bool    `db:"is_available"      json:"is_available"      validate:"omitempty"`
}

type SearchAvailabilityRequest struct {
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Type     string `json:"type"      validate:"omitempty"`
}

type RoomResponse struct {
	ID               string   `json:"id"`
	RoomNumber       string   `json:"room_number"`
	Type             string   `json:"type"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	CapacityAdults   int      `json:"capacity_adults"`
	CapacityChildren int      `json:"capacity_children"`
	BedType          string   `json:"bed_type"`
	Size             float64  `json:"size"`
	Floor            int      `json:"floor"`
	Amenities        []string `json:"amenities"`
	IsAvailable      bool     `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Type = string(model.Type)
	r.Title = model.Title
	r.Description = model.Description
	r.Price = model.Price
	r.CapacityAdults = model.CapacityAdults
	r.CapacityChildren = model.CapacityChildren
	r.BedType = model.BedType
	r.Size = model.Size
	r.Floor = model.Floor
	r.Amenities = model.Amenities
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type SearchAvailabilityResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *SearchAvailabilityResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
