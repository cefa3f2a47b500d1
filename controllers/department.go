package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/services"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

func Department(router *gin.Engine) {
	department := router.Group("/department")
	department.POST("/create", CreateDepartment)
	department.PUT("/update/:code", UpdateDepartment)
	department.GET("/fetch/:code", FetchDepartmentByCode)
	department.GET("/fetchAll", FetchAllDepartments)
	department.DELETE("/delete/:code", DeleteDepartment)
	department.GET("/doctorOptions", DoctorOptions)
}

/*
* Bind JSON
* And Pass to the service
 */
func CreateDepartment(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	code, err := services.CreateDepartment(c, data)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(code))
}

/*
* Get code from params
* Bind the fields which are need to be updated
* Pass to the service
 */
func UpdateDepartment(c *gin.Context) {
	code := c.Param("code")
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateDepartment(c, code, data)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(msg))
}

func FetchDepartmentByCode(c *gin.Context) {
	code := c.Param("code")
	data, err := services.FetchDepartmentByCode(c, code)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(data))
}

func FetchAllDepartments(c *gin.Context) {
	result, err := services.FetchAllDepartments(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(result))
}

/*
* Deletion is confirmed on the client, the call itself is final
 */
func DeleteDepartment(c *gin.Context) {
	code := c.Param("code")
	msg, err := services.DeleteDepartment(c, code)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(msg))
}

/*
* Candidates for the head-doctor selector, scoped to the department when a
* department code is supplied
 */
func DoctorOptions(c *gin.Context) {
	departmentCode := c.Query("department")
	result, err := services.DoctorOptions(c, departmentCode)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(result))
}
