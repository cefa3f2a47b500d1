package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/authorization"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/controllers"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	controllers.Directory(r)
	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.Department(r)
	controllers.Doctor(r)
	controllers.Earnings(r)
	controllers.Settings(r)
}
