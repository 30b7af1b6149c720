package http

import (
	"github.com/gin-gonic/gin"

	"task-intent/pkg/response"
)

// Parse godoc
// @Summary     Parse a task
// @Description Extracts title, dates, priority, project, labels, recurrence and more from free text.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text and lookup tables"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newParseResp(output))
}

// ParseBatch godoc
// @Summary     Parse many tasks
// @Description Parses every text with the same lookup tables and reference time, keeping input order.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       body body parseBatchReq true "Texts and lookup tables"
// @Success     200  {object} parseBatchResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/parse/batch [POST]
func (h *handler) ParseBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseBatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseBatch(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseBatch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseBatchResp(output))
}

// Autocomplete godoc
// @Summary     Complete a project or label token
// @Description Returns candidates for a trailing #project or @label token of partial input.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       body body autocompleteReq true "Partial text and lookup tables"
// @Success     200  {object} autocompleteResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/intents/autocomplete [POST]
func (h *handler) Autocomplete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAutocompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Autocomplete(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Autocomplete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAutocompleteResp(output))
}

// SuggestDueDate godoc
// @Summary     Suggest a due date
// @Description Infers a due date from temporal phrases in the content. The suggestion is null when none is found.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Task content"
// @Success     200  {object} dueDateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/suggestions/due-date [POST]
func (h *handler) SuggestDueDate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestDueDate(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SuggestDueDate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDueDateResp(output))
}

// SuggestPriority godoc
// @Summary     Suggest a priority
// @Description Infers p1..p4 from urgency and importance phrasing. The suggestion is null when none is found.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Task content"
// @Success     200  {object} priorityResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/suggestions/priority [POST]
func (h *handler) SuggestPriority(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestPriority(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SuggestPriority: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPriorityResp(output))
}

// SuggestGrouping godoc
// @Summary     Suggest category, project and labels
// @Description Suggests a category, the best matching known project and labels for a task.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body groupingReq true "Task content and known projects"
// @Success     200  {object} groupingResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/suggestions/grouping [POST]
func (h *handler) SuggestGrouping(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGroupingReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestGrouping(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SuggestGrouping: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGroupingResp(output))
}

// GroupByCategory godoc
// @Summary     Group tasks by category
// @Description Buckets existing tasks by inferred category in order of first appearance.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body categorizeReq true "Tasks"
// @Success     200  {object} categorizeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/suggestions/categorize [POST]
func (h *handler) GroupByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCategorizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GroupByCategory(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.GroupByCategory: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCategorizeResp(output))
}

// FindSimilar godoc
// @Summary     Find similar tasks
// @Description Ranks candidate tasks by shared words, labels and project.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body similarReq true "Target and candidate tasks"
// @Success     200  {object} similarResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/suggestions/similar [POST]
func (h *handler) FindSimilar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSimilarReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FindSimilar(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.FindSimilar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSimilarResp(output))
}
