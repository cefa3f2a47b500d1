package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/services"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

func Settings(router *gin.Engine) {
	settings := router.Group("/settings")
	settings.GET("/baseFee", FetchBaseFee)
	settings.PUT("/baseFee", UpdateBaseFee)
}

func FetchBaseFee(c *gin.Context) {
	fee, err := services.FetchBaseFee(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(gin.H{"baseFee": fee}))
}

/*
* Explicit update only, there is no autosave
* The clamped value is echoed back so the client can confirm the save
 */
func UpdateBaseFee(c *gin.Context) {
	var body struct {
		BaseFee *float64 `json:"baseFee"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	if body.BaseFee == nil {
		c.JSON(400, util.FailedResponse(errors.New("baseFee is required")))
		return
	}
	fee, err := services.UpdateBaseFee(c, *body.BaseFee, c.GetString("code"))
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(gin.H{"baseFee": fee, "saved": true}))
}
