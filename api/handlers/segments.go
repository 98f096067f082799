package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoscript/dto"
	"photoscript/services"
)

// ListSegmentsHandler godoc
// @Summary      List segments of a project
// @Description  Segments ordered by their fractional order value
// @Tags         segments
// @Param        id   path   string  true  "Project ObjectID"
// @Produce      json
// @Success      200  {array}  dto.SegmentDTO
// @Router       /projects/{id}/segments [get]
func ListSegmentsHandler(svc *services.SegmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		segs, err := svc.List(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTOs(segs))
	}
}

// InsertSegmentHandler godoc
// @Summary      Insert a segment at a position
// @Description  Only the new segment gets an order value; siblings are untouched
// @Tags         segments
// @Accept       json
// @Param        id    path  string  true  "Project ObjectID"
// @Param        body  body  dto.InsertSegmentRequest  true  "Segment"
// @Produce      json
// @Success      201  {object}  dto.SegmentDTO
// @Router       /projects/{id}/segments [post]
func InsertSegmentHandler(svc *services.SegmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.InsertSegmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		seg, err := svc.InsertAt(c.Request.Context(), c.Param("id"), req.Position, req.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.NewSegmentDTO(*seg))
	}
}

// UpdateSegmentTextHandler godoc
// @Summary      Update segment text
// @Description  Resets the segment to DRAFT and drops its asset links
// @Tags         segments
// @Accept       json
// @Param        id    path  string  true  "Segment ObjectID"
// @Param        body  body  dto.UpdateSegmentTextRequest  true  "Text"
// @Produce      json
// @Success      200  {object}  dto.SegmentDTO
// @Router       /segments/{id}/text [put]
func UpdateSegmentTextHandler(svc *services.SegmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateSegmentTextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		seg, err := svc.UpdateText(c.Request.Context(), c.Param("id"), req.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTO(*seg))
	}
}

// UpdateSegmentKeywordsHandler godoc
// @Summary      Update segment keywords
// @Tags         segments
// @Accept       json
// @Param        id    path  string  true  "Segment ObjectID"
// @Param        body  body  dto.UpdateKeywordsRequest  true  "Keywords"
// @Produce      json
// @Success      200  {object}  dto.SegmentDTO
// @Router       /segments/{id}/keywords [put]
func UpdateSegmentKeywordsHandler(svc *services.SegmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateKeywordsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		seg, err := svc.UpdateKeywords(c.Request.Context(), c.Param("id"), req.Keywords)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTO(*seg))
	}
}

// DeleteSegmentHandler godoc
// @Summary      Delete segment
// @Tags         segments
// @Param        id   path   string  true  "Segment ObjectID"
// @Success      204
// @Router       /segments/{id} [delete]
func DeleteSegmentHandler(svc *services.SegmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// SplitSegmentHandler godoc
// @Summary      Split a segment at a rune offset
// @Tags         segments
// @Accept       json
// @Param        id    path  string  true  "Segment ObjectID"
// @Param        body  body  dto.SplitSegmentRequest  true  "Offset"
// @Produce      json
// @Success      200  {array}  dto.SegmentDTO
// @Router       /segments/{id}/split [post]
func SplitSegmentHandler(svc *services.SegmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SplitSegmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		segs, err := svc.Split(c.Request.Context(), c.Param("id"), req.Offset)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTOs(segs))
	}
}

// MergeSegmentsHandler godoc
// @Summary      Merge a contiguous run of segments
// @Description  Segment ids must occupy adjacent positions in ascending order
// @Tags         segments
// @Accept       json
// @Param        id    path  string  true  "Project ObjectID"
// @Param        body  body  dto.MergeSegmentsRequest  true  "Segment ids"
// @Produce      json
// @Success      200  {object}  dto.SegmentDTO
// @Router       /projects/{id}/segments/merge [post]
func MergeSegmentsHandler(svc *services.SegmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.MergeSegmentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		seg, err := svc.Merge(c.Request.Context(), c.Param("id"), req.SegmentIDs)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTO(*seg))
	}
}

// MoveSegmentHandler godoc
// @Summary      Move a segment to a position
// @Tags         segments
// @Accept       json
// @Param        id    path  string  true  "Segment ObjectID"
// @Param        body  body  dto.MoveSegmentRequest  true  "Position"
// @Produce      json
// @Success      200  {object}  dto.SegmentDTO
// @Router       /segments/{id}/move [post]
func MoveSegmentHandler(svc *services.SegmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.MoveSegmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		seg, err := svc.Move(c.Request.Context(), c.Param("id"), req.Position)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTO(*seg))
	}
}

// ReindexSegmentsHandler godoc
// @Summary      Rewrite segment orders to 1.0, 2.0, ...
// @Tags         segments
// @Param        id   path   string  true  "Project ObjectID"
// @Produce      json
// @Success      200  {array}  dto.SegmentDTO
// @Router       /projects/{id}/segments/reindex [post]
func ReindexSegmentsHandler(svc *services.SegmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		segs, err := svc.Reindex(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTOs(segs))
	}
}

// MatchSegmentHandler godoc
// @Summary      Re-run matching for one segment
// @Tags         segments
// @Param        id   path   string  true  "Segment ObjectID"
// @Produce      json
// @Success      200  {object}  dto.SegmentDTO
// @Router       /segments/{id}/match [post]
func MatchSegmentHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seg, err := svc.MatchSegment(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSegmentDTO(*seg))
	}
}
