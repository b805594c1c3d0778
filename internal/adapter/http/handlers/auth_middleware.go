package handlers

import (
	"strings"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	ctxUser   = "user"
	ctxUserID = "user_id"
)

// RequireSession resolves the bearer token into the calling account and
// stores it on the context.
func RequireSession(auth usecase.IAuthUseCase, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errMissingBearer.HTTPStatus, errMissingBearer.ToHTTPError())
			return
		}

		user, err := auth.ResolveSession(c.Request.Context(), token)
		if err != nil {
			writeError(c, log, err)
			return
		}

		c.Set(ctxUser, user)
		c.Set(ctxUserID, user.ID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// caller returns the account set by RequireSession. Routes outside the
// protected group get a zero User, which every use case rejects.
func caller(c *gin.Context) entities.User {
	v, ok := c.Get(ctxUser)
	if !ok {
		return entities.User{}
	}
	u, _ := v.(entities.User)
	return u
}
