package http

import (
	"task-intent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	intents := rg.Group("/intents", mw.RateLimit())
	{
		intents.POST("/parse", h.Parse)
		intents.POST("/parse/batch", h.ParseBatch)
		intents.POST("/autocomplete", h.Autocomplete)
	}

	suggestions := rg.Group("/suggestions", mw.RateLimit())
	{
		suggestions.POST("/due-date", h.SuggestDueDate)
		suggestions.POST("/priority", h.SuggestPriority)
		suggestions.POST("/grouping", h.SuggestGrouping)
		suggestions.POST("/categorize", h.GroupByCategory)
		suggestions.POST("/similar", h.FindSimilar)
	}
}
