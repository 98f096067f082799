package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"photoscript/dto"
	"photoscript/services"
)

// SubmitQAJobHandler godoc
// @Summary      Queue a QA validation job
// @Description  One active job per project; the result becomes a new QA version
// @Tags         qa
// @Accept       json
// @Param        id    path  string  true  "Project ObjectID"
// @Param        body  body  dto.SubmitQAJobRequest  false  "Options"
// @Produce      json
// @Success      202  {object}  dto.QAJobDTO
// @Router       /projects/{id}/qa/jobs [post]
func SubmitQAJobHandler(svc *services.QAJobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SubmitQAJobRequest
		if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		job, err := svc.Submit(c.Request.Context(), c.Param("id"), req.AdditionalPrompt, req.CustomGuideline)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, dto.NewQAJobDTO(*job))
	}
}

// GetQAJobHandler godoc
// @Summary      Get QA job status
// @Tags         qa
// @Param        id   path   string  true  "Job ObjectID"
// @Produce      json
// @Success      200  {object}  dto.QAJobDTO
// @Router       /qa/jobs/{id} [get]
func GetQAJobHandler(svc *services.QAJobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewQAJobDTO(*job))
	}
}

// ListQAJobsHandler godoc
// @Summary      List QA jobs of a project
// @Tags         qa
// @Param        id   path   string  true  "Project ObjectID"
// @Produce      json
// @Success      200  {array}  dto.QAJobDTO
// @Router       /projects/{id}/qa/jobs [get]
func ListQAJobsHandler(svc *services.QAJobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobs, err := svc.ListByProject(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewQAJobDTOs(jobs))
	}
}

// ListQAVersionsHandler godoc
// @Summary      List QA versions of a project
// @Description  Latest version first
// @Tags         qa
// @Param        id   path   string  true  "Project ObjectID"
// @Produce      json
// @Success      200  {array}  dto.QAVersionDTO
// @Router       /projects/{id}/qa/versions [get]
func ListQAVersionsHandler(svc *services.QAVersionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		versions, err := svc.List(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewQAVersionDTOs(versions))
	}
}

// GetQAVersionHandler godoc
// @Summary      Get QA version by id
// @Tags         qa
// @Param        id   path   string  true  "Version ObjectID"
// @Produce      json
// @Success      200  {object}  dto.QAVersionDTO
// @Router       /qa/versions/{id} [get]
func GetQAVersionHandler(svc *services.QAVersionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewQAVersionDTO(*v))
	}
}

// UpdateQAVersionHandler godoc
// @Summary      Rename a QA version or edit its memo
// @Description  The snapshot body is immutable
// @Tags         qa
// @Accept       json
// @Param        id    path  string  true  "Version ObjectID"
// @Param        body  body  dto.UpdateVersionMetaRequest  true  "Meta"
// @Produce      json
// @Success      200  {object}  dto.QAVersionDTO
// @Router       /qa/versions/{id} [put]
func UpdateQAVersionHandler(svc *services.QAVersionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateVersionMetaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		v, err := svc.UpdateMeta(c.Request.Context(), c.Param("id"), req.VersionName, req.Memo)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewQAVersionDTO(*v))
	}
}

// DeleteQAVersionHandler godoc
// @Summary      Delete QA version
// @Tags         qa
// @Param        id   path   string  true  "Version ObjectID"
// @Success      204
// @Router       /qa/versions/{id} [delete]
func DeleteQAVersionHandler(svc *services.QAVersionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DiffQAVersionsHandler godoc
// @Summary      Diff two QA versions
// @Description  Version number 0 refers to the project's original script
// @Tags         qa
// @Param        id    path   string  true   "Project ObjectID"
// @Param        from  query  int     true   "From version number (0 = original)"
// @Param        to    query  int     true   "To version number (0 = original)"
// @Produce      json
// @Success      200  {object}  dto.DiffResponse
// @Router       /projects/{id}/qa/diff [get]
func DiffQAVersionsHandler(svc *services.QAVersionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be an integer"})
			return
		}
		to, err := strconv.Atoi(c.Query("to"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be an integer"})
			return
		}
		from, to = services.OrderVersionPair(from, to)
		diff, err := svc.Diff(c.Request.Context(), c.Param("id"), from, to)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.DiffResponse{From: from, To: to, Diff: diff})
	}
}

// GenerateTextHandler godoc
// @Summary      Generate segment text from a prompt
// @Description  Mode is classified from the prompt: URL wins, then search intent, then enhance
// @Tags         textgen
// @Accept       json
// @Param        id    path  string  true  "Project ObjectID"
// @Param        body  body  dto.GenerateTextRequest  true  "Prompt"
// @Produce      json
// @Success      200  {object}  services.GenerateResult
// @Router       /projects/{id}/textgen [post]
func GenerateTextHandler(svc *services.TextGenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateTextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		res, err := svc.Generate(c.Request.Context(), c.Param("id"), req.SegmentID, req.Prompt)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
