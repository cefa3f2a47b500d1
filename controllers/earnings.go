package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/services"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

func Earnings(router *gin.Engine) {
	earnings := router.Group("/earnings")
	earnings.GET("/report", EarningsReport)
}

/*
* Parse the requested range, defaulting to the current month
* The service fetches everything and filters in memory
 */
func EarningsReport(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(400, util.FailedResponse(errors.New("start must be YYYY-MM-DD")))
			return
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(400, util.FailedResponse(errors.New("end must be YYYY-MM-DD")))
			return
		}
		end = parsed
	}
	if end.Before(start) {
		c.JSON(400, util.FailedResponse(errors.New("end must not precede start")))
		return
	}

	report, err := services.BuildEarningsReport(c, start, end)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(gin.H{
		"report":     report,
		"averageFee": report.AverageFeeDisplay(),
	}))
}
