package dto

import "hotel-admin/models"

// CreateRequest carries raw form values; the schema table coerces them.
type CreateRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// UpdateRequest re-submits the editable subset of one record.
type UpdateRequest struct {
	Key    models.Key        `json:"key" binding:"required"`
	Fields map[string]string `json:"fields" binding:"required"`
}
