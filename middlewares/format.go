package middlewares

import (
	"log"

	"github.com/gin-gonic/gin"
)

// HttpError logs the underlying error server-side and writes a JSON error
// body carrying only the public message.
func HttpError(c *gin.Context, message string, status int, err error) {
	if err != nil {
		log.Printf("HTTP %d - %s: %v", status, message, err)
	} else {
		log.Printf("HTTP %d - %s", status, message)
	}
	c.JSON(status, gin.H{"error": message})
}
