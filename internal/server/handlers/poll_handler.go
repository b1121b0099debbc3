package handlers

import (
	"net/http"

	"poll-service/internal/ports/models"
	"poll-service/internal/server/middleware"
	"poll-service/internal/server/service"
	"poll-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type PollHandler struct {
	pollService *service.PollService
}

func NewPollHandler(pollService *service.PollService) *PollHandler {
	return &PollHandler{pollService: pollService}
}

// @Summary List the caller's polls
// @Description All polls owned by the authenticated account, newest first
// @Tags polls
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /polls [get]
func (h *PollHandler) ListPolls(c *gin.Context) {
	caller := middleware.CallerFromContext(c.Request.Context())

	polls, err := h.pollService.GetUserPolls(c.Request.Context(), caller)
	if err != nil {
		c.JSON(response.StatusOf(err), gin.H{"polls": polls, "error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"polls": polls, "error": nil})
}

// @Summary Create a poll
// @Description Create a poll owned by the authenticated account
// @Tags polls
// @Accept json
// @Produce json
// @Param request body models.CreatePollRequest true "Create Poll Request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /polls [post]
func (h *PollHandler) CreatePoll(c *gin.Context) {
	var req models.CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"poll": nil, "error": msgInvalidBody})
		return
	}

	caller := middleware.CallerFromContext(c.Request.Context())
	poll, err := h.pollService.CreatePoll(c.Request.Context(), caller, req)
	if err != nil {
		c.JSON(response.StatusOf(err), gin.H{"poll": nil, "error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"poll": poll, "error": nil})
}

// @Summary Get a poll
// @Description Read a single poll by id; no authentication required
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /polls/{id} [get]
func (h *PollHandler) GetPoll(c *gin.Context) {
	poll, err := h.pollService.GetPollByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(response.StatusOf(err), gin.H{"poll": nil, "error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"poll": poll, "error": nil})
}

// @Summary Update a poll
// @Description Update question and options; only the owner's row is touched
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param request body models.UpdatePollRequest true "Update Poll Request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /polls/{id} [put]
func (h *PollHandler) UpdatePoll(c *gin.Context) {
	var req models.UpdatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	caller := middleware.CallerFromContext(c.Request.Context())
	if err := h.pollService.UpdatePoll(c.Request.Context(), caller, c.Param("id"), req); err != nil {
		c.JSON(response.StatusOf(err), gin.H{"error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": nil})
}

// @Summary Delete a poll
// @Description Delete a poll; only the owner's row is touched
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /polls/{id} [delete]
func (h *PollHandler) DeletePoll(c *gin.Context) {
	caller := middleware.CallerFromContext(c.Request.Context())

	if err := h.pollService.DeletePoll(c.Request.Context(), caller, c.Param("id")); err != nil {
		c.JSON(response.StatusOf(err), gin.H{"error": response.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": nil})
}
