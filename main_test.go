package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRun_WiresRoutes(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()

	var captured *gin.Engine

	// intercept the listen call
	startServer = func(r *gin.Engine, addr string) error {
		captured = r
		return nil
	}

	main()

	assert.NotNil(t, captured)

	paths := map[string]bool{}
	for _, route := range captured.Routes() {
		paths[route.Method+" "+route.Path] = true
	}
	assert.True(t, paths["POST /auth/login"])
	assert.True(t, paths["GET /public/departments"])
	assert.True(t, paths["GET /public/doctors/:code"])
	assert.True(t, paths["POST /department/create"])
	assert.True(t, paths["PUT /doctor/update/:code"])
	assert.True(t, paths["GET /earnings/report"])
	assert.True(t, paths["PUT /settings/baseFee"])
}
