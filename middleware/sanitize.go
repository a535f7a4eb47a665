package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda-backend/models"
	"tienda-backend/utils"
)

// SanitizeBody strips markup from every string leaf of a JSON request body
// before the handler binds it, so validation always sees sanitized input.
// Bodies that are not valid JSON are restored untouched and left for the
// binder to reject.
func SanitizeBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				OK:      false,
				Message: "Invalid request body",
			})
			c.Abort()
			return
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.UseNumber() // keep number literals byte-for-byte
		var payload any
		if err := decoder.Decode(&payload); err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}

		sanitized, err := json.Marshal(utils.SanitizeValue(payload))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				OK:      false,
				Message: "Invalid request body",
			})
			c.Abort()
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(sanitized))
		c.Request.ContentLength = int64(len(sanitized))
		c.Next()
	}
}
