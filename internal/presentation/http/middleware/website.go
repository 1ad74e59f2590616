package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/revas-hq/website-go/internal/domain/repositories"
	"github.com/revas-hq/website-go/pkg/config"
)

// WebsiteContext represents the website identity for a request
type WebsiteContext struct {
	Identity repositories.WebsiteIdentity
}

// WebsiteMiddleware extracts the website identity from the Revas-Authority
// and Revas-Public-Key headers, falling back to the configured defaults.
// Missing identity does not abort here; the loaders treat an empty identity
// as a local generic failure so the response still carries its cookies.
func WebsiteMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.GetHeader("Revas-Authority")
		if name == "" {
			name = config.DefaultWebsiteName
		}

		publicKey := c.GetHeader("Revas-Public-Key")
		if publicKey == "" {
			publicKey = config.DefaultPublicKey
		}

		websiteCtx := &WebsiteContext{
			Identity: repositories.WebsiteIdentity{
				Name:      name,
				PublicKey: publicKey,
			},
		}

		// Store in gin context for handlers to access
		c.Set("website", websiteCtx)

		c.Next()
	}
}

// GetWebsiteContext retrieves the website context from gin context
func GetWebsiteContext(c *gin.Context) (*WebsiteContext, bool) {
	websiteCtx, exists := c.Get("website")
	if !exists {
		return nil, false
	}

	ctx, ok := websiteCtx.(*WebsiteContext)
	return ctx, ok
}
