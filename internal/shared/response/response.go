package response

import (
	"github.com/gin-gonic/gin"
)

// Message is the confirmation body returned by delete endpoints.
type Message struct {
	Message string `json:"message"`
}

func NewMessage(msg string) Message {
	return Message{Message: msg}
}

// Error writes the error body shared by every handler.
func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, gin.H{
		"error": map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
