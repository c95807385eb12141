package model

import "strings"

type RoomType string

const (
	TypeStandard     RoomType = "standard"
	TypeDeluxe       RoomType = "deluxe"
	TypeSuite        RoomType = "suite"
	TypePresidential RoomType = "presidential"
)

func AllTypes() []RoomType {
	return []RoomType{TypeStandard, TypeDeluxe, TypeSuite, TypePresidential}
}

// typeLabels maps the labels the public site sends, including the French
// variants, to the canonical room types.
var typeLabels = map[string]RoomType{
	"standard":                TypeStandard,
	"chambre standard":        TypeStandard,
	"deluxe":                  TypeDeluxe,
	"chambre deluxe":          TypeDeluxe,
	"suite":                   TypeSuite,
	"chambre suite":           TypeSuite,
	"presidential":            TypePresidential,
	"presidentielle":          TypePresidential,
	"présidentielle":          TypePresidential,
	"chambre presidentielle":  TypePresidential,
	"chambre présidentielle":  TypePresidential,
}

// NormalizeType resolves a room-type label to its canonical type.
// Matching is case-insensitive and ignores surrounding whitespace.
func NormalizeType(label string) (RoomType, bool) {
	roomType, ok := typeLabels[strings.ToLower(strings.TrimSpace(label))]

	return roomType, ok
}
