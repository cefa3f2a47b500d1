package authorization

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/jwt"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

/*
* Require a Bearer token on the admin subtree
* Validate the signature and expiry, then stash the claims in the context
* Presence of a stored flag is never enough, the token itself is verified
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, util.FailedResponse(errors.New("authorization header missing")))
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(401, util.FailedResponse(errors.New("invalid authorization header")))
			return
		}
		claims, err := jwt.ValidateJWT(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(401, util.FailedResponse(errors.New("invalid token: "+err.Error())))
			return
		}
		c.Set("code", claims.Code)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}
