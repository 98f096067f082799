package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoscript/dto"
	"photoscript/services"
)

// ListCandidatesHandler godoc
// @Summary      List asset candidates of a segment
// @Description  Candidates ordered by score, best first
// @Tags         assets
// @Param        id   path   string  true  "Segment ObjectID"
// @Produce      json
// @Success      200  {array}  dto.CandidateDTO
// @Router       /segments/{id}/assets [get]
func ListCandidatesHandler(svc *services.AssetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := svc.ListCandidates(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewCandidateDTOs(views))
	}
}

// GetPrimaryHandler godoc
// @Summary      Get the segment's primary asset
// @Tags         assets
// @Param        id   path   string  true  "Segment ObjectID"
// @Produce      json
// @Success      200  {object}  dto.CandidateDTO
// @Success      204  "no primary"
// @Router       /segments/{id}/assets/primary [get]
func GetPrimaryHandler(svc *services.AssetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Primary(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if view == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, dto.NewCandidateDTO(*view))
	}
}

// SetPrimaryHandler godoc
// @Summary      Set the segment's primary asset
// @Description  User choice; moves the segment to CUSTOM regardless of its current status
// @Tags         assets
// @Accept       json
// @Param        id    path  string  true  "Segment ObjectID"
// @Param        body  body  dto.SetPrimaryRequest  true  "Asset id"
// @Produce      json
// @Success      200  {object}  dto.SegmentDTO
// @Router       /segments/{id}/assets/primary [put]
func SetPrimaryHandler(svc *services.AssetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SetPrimaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		seg, err := svc.SetPrimary(c.Request.Context(), c.Param("id"), req.AssetID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTO(*seg))
	}
}
