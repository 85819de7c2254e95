package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"titledesk/internal/infrastructure/auth"
	"titledesk/internal/shared/logger"
	"titledesk/internal/shared/utils"
)

// ContextKeyOperatorID is where RequireOperator stores the verified operator.
const ContextKeyOperatorID = "operator_id"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireOperator rejects requests without a valid operator bearer token.
func (m *AuthMiddleware) RequireOperator() gin.HandlerFunc {
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

		c.Set(ContextKeyOperatorID, claims.OperatorID)
		c.Set("operator_name", claims.OperatorName)

		c.Next()
	}
}

// OperatorID returns the operator stored by RequireOperator, or 0 when the
// request was not authenticated.
func OperatorID(c *gin.Context) uint {
	if v, ok := c.Get(ContextKeyOperatorID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
