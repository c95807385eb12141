package model

import (
	"horizon/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID               = "id"
	FieldRoomNumber       = "room_number"
	FieldType             = "type"
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldPrice            = "price"
	FieldCapacityAdults   = "capacity_adults"
	FieldCapacityChildren = "capacity_children"
	FieldBedType          = "bed_type"
	FieldSize             = "size"
	FieldFloor            = "floor"
	FieldAmenities        = "amenities"
	FieldIsAvailable      = "is_available"
)

type Room struct {
	ID               string         `db:"id"`
	RoomNumber       string         `db:"room_number"`
	Type             RoomType       `db:"type"`
	Title            string         `db:"title"`
	Description      string         `db:"description"`
	Price            float64        `db:"price"`
	CapacityAdults   int            `db:"capacity_adults"`
	CapacityChildren int            `db:"capacity_children"`
	BedType          string         `db:"bed_type"`
	Size             float64        `db:"size"`
	Floor            int            `db:"floor"`
	Amenities        pq.StringArray `db:"amenities"`
	IsAvailable      bool           `db:"is_available"`
	model.Metadata
}
