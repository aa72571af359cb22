package middleware

import "github.com/gin-gonic/gin"

// securityHeaders are set on every response. The API only serves JSON, so
// nothing may be framed, embedded or cached.
var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Cache-Control", "no-store"},
}

// SecurityHeaders returns Gin middleware that sets the security response headers.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range securityHeaders {
			c.Header(h[0], h[1])
		}

		c.Next()
	}
}
