package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoscript/dto"
	"photoscript/services"
)

// ListProjectsHandler godoc
// @Summary      List projects
// @Description  List projects, latest first
// @Tags         projects
// @Produce      json
// @Success      200  {array}  dto.ProjectDTO
// @Router       /projects [get]
func ListProjectsHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]dto.ProjectDTO, 0, len(items))
		for _, p := range items {
			out = append(out, dto.NewProjectDTO(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

// CreateProjectHandler godoc
// @Summary      Create project
// @Description  Create a project with a title and raw script
// @Tags         projects
// @Accept       json
// @Param        body  body  dto.CreateProjectRequest  true  "Project"
// @Produce      json
// @Success      201  {object}  dto.ProjectDTO
// @Router       /projects [post]
func CreateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := svc.Create(c.Request.Context(), req.Title, req.ScriptRaw)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.NewProjectDTO(*p))
	}
}

// GetProjectHandler godoc
// @Summary      Get project by id
// @Tags         projects
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.ProjectDTO
// @Router       /projects/{id} [get]
func GetProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewProjectDTO(*p))
	}
}

// UpdateProjectHandler godoc
// @Summary      Update project
// @Description  Replace the project's title and raw script
// @Tags         projects
// @Accept       json
// @Param        id    path  string  true  "ObjectID"
// @Param        body  body  dto.UpdateProjectRequest  true  "Project"
// @Produce      json
// @Success      200  {object}  dto.ProjectDTO
// @Router       /projects/{id} [put]
func UpdateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := svc.UpdateScript(c.Request.Context(), c.Param("id"), req.Title, req.ScriptRaw)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewProjectDTO(*p))
	}
}

// DeleteProjectHandler godoc
// @Summary      Delete project
// @Description  Delete the project and everything it owns
// @Tags         projects
// @Param        id   path   string  true  "ObjectID"
// @Success      204
// @Router       /projects/{id} [delete]
func DeleteProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// SplitProjectHandler godoc
// @Summary      Split script into segments
// @Description  Replace the project's segments with a fresh split of the raw script
// @Tags         workflows
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {array}  dto.SegmentDTO
// @Router       /projects/{id}/split [post]
func SplitProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		segs, err := svc.SplitScript(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTOs(segs))
	}
}

// MatchProjectHandler godoc
// @Summary      Match all segments
// @Description  Run keyword extraction, retrieval and ranking over the project's segments
// @Tags         workflows
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {array}  dto.SegmentDTO
// @Router       /projects/{id}/match [post]
func MatchProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		segs, err := svc.MatchProject(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTOs(segs))
	}
}

// GenerateProjectHandler godoc
// @Summary      Generate: split then match
// @Tags         workflows
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {array}  dto.SegmentDTO
// @Router       /projects/{id}/generate [post]
func GenerateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		segs, err := svc.Generate(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTOs(segs))
	}
}
