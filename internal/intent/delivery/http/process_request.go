package http

import (
	"github.com/gin-gonic/gin"
)

// bindJSON binds the request body into req and runs its validate method.
func bindJSON[T interface{ validate() error }](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	return bindJSON[parseReq](c)
}

func (h *handler) processParseBatchReq(c *gin.Context) (parseBatchReq, error) {
	return bindJSON[parseBatchReq](c)
}

func (h *handler) processAutocompleteReq(c *gin.Context) (autocompleteReq, error) {
	return bindJSON[autocompleteReq](c)
}

func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	return bindJSON[suggestReq](c)
}

func (h *handler) processGroupingReq(c *gin.Context) (groupingReq, error) {
	return bindJSON[groupingReq](c)
}

func (h *handler) processCategorizeReq(c *gin.Context) (categorizeReq, error) {
	return bindJSON[categorizeReq](c)
}

func (h *handler) processSimilarReq(c *gin.Context) (similarReq, error) {
	return bindJSON[similarReq](c)
}
