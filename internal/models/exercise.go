package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise categories.
const (
	CategoryChest     = "chest"
	CategoryBack      = "back"
	CategoryShoulders = "shoulders"
	CategoryArms      = "arms"
	CategoryLegs      = "legs"
	CategoryCore      = "core"
	CategoryCardio    = "cardio"
	CategoryFullBody  = "full_body"
)

// Categories lists all valid exercise categories.
var Categories = []string{
	CategoryChest, CategoryBack, CategoryShoulders, CategoryArms,
	CategoryLegs, CategoryCore, CategoryCardio, CategoryFullBody,
}

// ValidCategory reports whether c is a known exercise category.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Exercise is a catalog entry describing one exercise type.
type Exercise struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	MuscleGroups []string   `json:"muscle_groups"`
	Equipment    string     `json:"equipment"`
	Difficulty   string     `json:"difficulty"`
	Description  string     `json:"description,omitempty"`
	Instructions []string   `json:"instructions,omitempty"`
	IsCustom     bool       `json:"is_custom"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ExerciseFilter narrows catalog listings. Zero values mean "no filter".
type ExerciseFilter struct {
	Category    string
	Equipment   string
	Difficulty  string
	MuscleGroup string
}
