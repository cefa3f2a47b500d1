package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/services"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

func Auth(router *gin.Engine) {
	auth := router.Group("/auth")
	auth.POST("/login", Login)
}

/*
* Bind JSON
* And Pass to the service, which returns a signed token plus the profile
 */
func Login(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	result, err := services.Login(c, data)
	if err != nil {
		c.JSON(401, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(result))
}
