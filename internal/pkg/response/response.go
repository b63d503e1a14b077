package response

import "github.com/gin-gonic/gin"

// JSON writes the payload as-is. Search and catalog endpoints return raw
// arrays, bookings return wrapped objects; the shape is up to the caller.
func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Error writes the API-wide error body: {"message": "..."}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}
