package services

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

func TestClampFeePercentage(t *testing.T) {
	assert.Equal(t, float64(0), ClampFeePercentage(-5))
	assert.Equal(t, float64(100), ClampFeePercentage(150))
	assert.Equal(t, float64(42.5), ClampFeePercentage(42.5))
	assert.Equal(t, float64(0), ClampFeePercentage(0))
	assert.Equal(t, float64(100), ClampFeePercentage(100))
}

func TestClampBaseFee(t *testing.T) {
	assert.Equal(t, float64(0), ClampBaseFee(-3))
	assert.Equal(t, float64(250), ClampBaseFee(250))
}

func TestValidateDepartmentInput(t *testing.T) {
	data := map[string]interface{}{
		"name":           "Cardiology",
		"description":    "heart care",
		"location":       "Block A",
		"email":          "cardio@example.com",
		"phoneNo":        "123456",
		"headDoctorId":   "DOC-1",
		"headDoctorName": "Dr. Ahmed",
	}
	assert.NoError(t, validateDepartmentInput(data))

	delete(data, "description")
	err := validateDepartmentInput(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestValidateDoctorInput(t *testing.T) {
	data := map[string]interface{}{
		"name":           "Dr. Sara",
		"speciality":     "Neurosurgery",
		"email":          "sara@example.com",
		"departmentId":   "DEP-1",
		"departmentName": "Neurology",
	}
	assert.NoError(t, validateDoctorInput(data))

	data["departmentId"] = "   "
	err := validateDoctorInput(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestApplyImage_OversizedFallsBackToPlaceholder(t *testing.T) {
	oversized := base64.StdEncoding.EncodeToString(make([]byte, util.MaxImageBytes+1))
	data := map[string]interface{}{
		"name":      "Cardiology",
		"imageData": oversized,
	}

	applyImage(data, "Cardiology", util.DepartmentFallbackImages)

	image, _ := data["image"].(string)
	assert.Equal(t, util.PickFallback("Cardiology", util.DepartmentFallbackImages), image)
	_, stillThere := data["imageData"]
	assert.False(t, stillThere)
}

func TestApplyImage_EncodesValidUpload(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	data := map[string]interface{}{
		"name":      "Neurology",
		"imageData": base64.StdEncoding.EncodeToString(png),
	}

	applyImage(data, "Neurology", util.DepartmentFallbackImages)

	image, _ := data["image"].(string)
	assert.True(t, strings.HasPrefix(image, "data:image/png;base64,"))
}

func TestApplyImage_NoUploadKeepsExistingImage(t *testing.T) {
	data := map[string]interface{}{
		"name":  "Oncology",
		"image": "data:image/jpeg;base64,abc",
	}

	applyImage(data, "Oncology", util.DepartmentFallbackImages)

	assert.Equal(t, "data:image/jpeg;base64,abc", data["image"])
}

func TestApplyImage_NoUploadNoImageGetsPlaceholder(t *testing.T) {
	data := map[string]interface{}{"name": "Oncology"}

	applyImage(data, "Oncology", util.DepartmentFallbackImages)

	assert.Equal(t, util.PickFallback("Oncology", util.DepartmentFallbackImages), data["image"])
}

func TestApplyImageUpdate_NoUploadLeavesStoredImageAlone(t *testing.T) {
	data := map[string]interface{}{"name": "Oncology", "imageData": ""}

	applyImageUpdate(data, "Oncology", util.DepartmentFallbackImages)

	_, hasImage := data["image"]
	assert.False(t, hasImage)
	_, hasUpload := data["imageData"]
	assert.False(t, hasUpload)
}

func TestApplyImageUpdate_UploadIsEncoded(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	data := map[string]interface{}{
		"name":      "Oncology",
		"imageData": base64.StdEncoding.EncodeToString(png),
	}

	applyImageUpdate(data, "Oncology", util.DepartmentFallbackImages)

	image, _ := data["image"].(string)
	assert.True(t, strings.HasPrefix(image, "data:image/png;base64,"))
}
