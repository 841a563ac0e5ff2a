package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/subflow-io/subflow/internal/domain/catalog"
	"github.com/subflow-io/subflow/internal/infrastructure/auth"
	"github.com/subflow-io/subflow/internal/shared/authorization"
	"github.com/subflow-io/subflow/internal/shared/constants"
	"github.com/subflow-io/subflow/internal/shared/logger"
	"github.com/subflow-io/subflow/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService  *auth.JWTService
	contactRepo catalog.ContactRepository
	logger      logger.Interface
}

func NewAuthMiddleware(
	jwtService *auth.JWTService,
	contactRepo catalog.ContactRepository,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// RequireAuth verifies the bearer token and stores the resolved principal
// in the request context. Portal callers are pinned to their linked contact
// here so the use cases never see an unscoped portal request.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if !claims.Role.IsValid() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unknown role")
			c.Abort()
			return
		}

		principal := authorization.Principal{
			UserID: claims.UserID,
			Role:   claims.Role,
		}

		if principal.IsPortal() {
			contact, err := m.contactRepo.GetByUserID(c.Request.Context(), claims.UserID)
			if err != nil {
				m.logger.Errorw("failed to resolve portal contact", "user_id", claims.UserID, "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve portal contact")
				c.Abort()
				return
			}
			if contact == nil {
				utils.ErrorResponse(c, http.StatusForbidden, "no contact linked to portal user")
				c.Abort()
				return
			}
			principal.ContactID = contact.ID
		}

		c.Set(constants.CtxPrincipal, principal)
		c.Next()
	}
}
