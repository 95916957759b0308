package middleware

import "github.com/gin-gonic/gin"

// actingUserKey is the key used to store the authenticated user's email in
// the request context. The email doubles as the audit identity stamped onto
// records the user modifies.
const actingUserKey = contextKey("actingUser")

// GetActingUserFromContext retrieves the authenticated user's email from the
// Gin context. It returns the email and a boolean indicating if it was found.
func GetActingUserFromContext(c *gin.Context) (string, bool) {
	// The auth middleware stores it in the standard request context.
	userVal := c.Request.Context().Value(actingUserKey)
	if userVal == nil {
		return "", false
	}

	email, ok := userVal.(string)
	if !ok {
		// Should not happen if the auth middleware sets it correctly.
		return "", false
	}
	return email, true
}
