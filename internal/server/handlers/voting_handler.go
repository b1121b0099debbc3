package handlers

import (
	"net/http"

	"poll-service/internal/ports/models"
	"poll-service/internal/server/middleware"
	"poll-service/internal/server/service"
	"poll-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	pollService *service.PollService
}

func NewVoteHandler(pollService *service.PollService) *VoteHandler {
	return &VoteHandler{pollService: pollService}
}

// @Summary Submit a vote
// @Description Record a vote for one option of a poll
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param request body models.VoteRequest true "Vote Request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /polls/{id}/vote [post]
func (h *VoteHandler) SubmitVote(c *gin.Context) {
	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	caller := middleware.CallerFromContext(c.Request.Context())
	if err := h.pollService.SubmitVote(c.Request.Context(), caller, c.Param("id"), req.OptionIndex); err != nil {
		c.JSON(response.StatusOf(err), gin.H{"error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"error": nil})
}

// @Summary Poll results
// @Description Vote tallies per option; no authentication required
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /polls/{id}/results [get]
func (h *VoteHandler) GetResults(c *gin.Context) {
	results, err := h.pollService.GetPollResults(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(response.StatusOf(err), gin.H{"results": nil, "error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "error": nil})
}
