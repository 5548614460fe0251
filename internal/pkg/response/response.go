// Package response writes the ParkNow API envelope:
// {"statusCode": ..., "message": ..., "data": ...}.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"message":    message,
		"data":       data,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"message":    message,
	})
}
