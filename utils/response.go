package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONSuccessNote is for operations that complete without touching the
// backend, like the silent no-op delete on a malformed room key.
func JSONSuccessNote(c *gin.Context, code int, note string) {
	c.JSON(code, gin.H{"success": true, "note": note})
}
