package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/services"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

func Doctor(router *gin.Engine) {
	doctor := router.Group("/doctor")
	doctor.POST("/create", CreateDoctor)
	doctor.PUT("/update/:code", UpdateDoctor)
	doctor.GET("/fetch/:code", FetchDoctorByCode)
	doctor.GET("/fetchAll", FetchAllDoctors)
	doctor.DELETE("/delete/:code", DeleteDoctor)
	doctor.GET("/departmentOptions", DepartmentOptions)
}

/*
* Bind JSON
* And Pass to the service
 */
func CreateDoctor(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	code, err := services.CreateDoctor(c, data)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(code))
}

/*
* Get code from params
* A newPassword field rides along and is routed to the credential service
 */
func UpdateDoctor(c *gin.Context) {
	code := c.Param("code")
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateDoctor(c, code, data)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(msg))
}

func FetchDoctorByCode(c *gin.Context) {
	code := c.Param("code")
	data, err := services.FetchDoctorByCode(c, code)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(data))
}

func FetchAllDoctors(c *gin.Context) {
	result, err := services.FetchAllDoctors(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(result))
}

func DeleteDoctor(c *gin.Context) {
	code := c.Param("code")
	msg, err := services.DeleteDoctor(c, code)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(msg))
}

func DepartmentOptions(c *gin.Context) {
	result, err := services.DepartmentOptions(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(result))
}
