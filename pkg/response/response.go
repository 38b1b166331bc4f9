package response

import "github.com/gin-gonic/gin"

// Kind is a stable, machine-readable classification carried in every failure
// payload. Clients match on these instead of parsing human-readable text.
type Kind string

const (
	KindValidation      Kind = "validation_error"
	KindNotFound        Kind = "not_found"
	KindUnauthenticated Kind = "unauthenticated"
	KindInvalidToken    Kind = "invalid_token"
	KindAuthFailed      Kind = "auth_failed"
	KindStore           Kind = "store_error"
)

// OK writes a success payload. Every response carries a "mensaje" field; data
// values go under their own named keys ("producto", "usuarios", ...).
func OK(c *gin.Context, status int, mensaje string, data gin.H) {
	body := gin.H{"mensaje": mensaje}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail writes a failure payload with a sanitized message and a stable error
// kind. Underlying store/driver errors are never exposed here.
func Fail(c *gin.Context, status int, mensaje string, kind Kind) {
	c.JSON(status, gin.H{"mensaje": mensaje, "error": kind})
}

// FailWithDetails is Fail with a per-field detail map, used for request
// validation failures.
func FailWithDetails(c *gin.Context, status int, mensaje string, kind Kind, detalles map[string]string) {
	c.JSON(status, gin.H{"mensaje": mensaje, "error": kind, "detalles": detalles})
}
