package dto

import (
	"time"

	"photoscript/models"
)

// ProjectDTO is the API representation of a project.
type ProjectDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ScriptRaw string    `json:"script_raw"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProjectDTO(p models.Project) ProjectDTO {
	return ProjectDTO{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		ScriptRaw: p.ScriptRaw,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type CreateProjectRequest struct {
	Title     string `json:"title" binding:"required"`
	ScriptRaw string `json:"script_raw" binding:"required"`
}

type UpdateProjectRequest struct {
	Title     string `json:"title" binding:"required"`
	ScriptRaw string `json:"script_raw"`
}
