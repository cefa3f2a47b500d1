package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/services"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

// Directory registers the public browsing endpoints. These are unguarded.
func Directory(router *gin.Engine) {
	public := router.Group("/public")
	public.GET("/departments", ListPublicDepartments)
	public.GET("/departments/:code", PublicDepartmentDetail)
	public.GET("/doctors", ListPublicDoctors)
	public.GET("/doctors/:code", PublicDoctorDetail)
}

/*
* Filters arrive as query params and are applied as a conjunction
* When a selected code is supplied the response carries the repaired
* selection alongside the filtered list
 */
func ListPublicDepartments(c *gin.Context) {
	filtered, err := services.ListDepartmentsWithDoctors(c, c.Query("search"), c.Query("location"))
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	selected, hasSelection := services.RepairSelection(filtered, c.Query("selected"))
	c.JSON(200, util.SuccessResponse(gin.H{
		"departments":  filtered,
		"selected":     selected,
		"hasSelection": hasSelection,
	}))
}

func PublicDepartmentDetail(c *gin.Context) {
	data, err := services.FetchDepartmentByCode(c, c.Param("code"))
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(data))
}

func ListPublicDoctors(c *gin.Context) {
	filtered, err := services.ListDoctorsWithDepartment(c, c.Query("search"), c.Query("department"))
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	selected, hasSelection := services.RepairSelection(filtered, c.Query("selected"))
	c.JSON(200, util.SuccessResponse(gin.H{
		"doctors":      filtered,
		"selected":     selected,
		"hasSelection": hasSelection,
	}))
}

func PublicDoctorDetail(c *gin.Context) {
	data, err := services.FetchDoctorByCode(c, c.Param("code"))
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(data))
}
