package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/innovatec/registration-api/internal/api/handler/v1/response"
	"github.com/innovatec/registration-api/internal/pkg/jwthelper"
)

// CtxKeyAdminID is the gin context key holding the authenticated
// admin's ID.
const CtxKeyAdminID = "admin_id"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing bearer token")))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, parts[1])
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		// Tokens are bound to the agent they were issued to.
		if claims.UserAgent != ctx.Request.UserAgent() {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("token was issued to a different client")))
			return
		}

		ctx.Set(CtxKeyAdminID, claims.UserID)
		ctx.Next()
	}
}
