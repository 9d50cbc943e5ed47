package models

import (
	"strings"
	"time"
)

// DefaultUnit is the unit of measure assigned when none is given.
const DefaultUnit = "Meters"

type Material struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateMaterialRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

func (r *CreateMaterialRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}
