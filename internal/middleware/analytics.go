package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const eventSinkKey = "analyticsSink"

// EventSink receives usage events keyed by operator.
type EventSink interface {
	Enqueue(distinctID, event string, properties map[string]any)
}

var untrackedPaths = map[string]bool{
	"/health": true,
}

// Analytics records one event per successful authenticated request, named
// after the route ("/api/v1/pos/sessions" becomes "api_v1_pos_sessions").
// Handlers add domain events through TrackEvent.
func Analytics(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}
		c.Set(eventSinkKey, sink)
		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if event == "" {
			return
		}
		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		sink.Enqueue(userID, event, props)
	}
}

// TrackEvent sends a custom event for the authenticated operator. It does
// nothing when analytics is off.
func TrackEvent(c *gin.Context, event string, properties map[string]any) {
	v, ok := c.Get(eventSinkKey)
	if !ok {
		return
	}
	sink, ok := v.(EventSink)
	if !ok {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	sink.Enqueue(userID, event, properties)
}
