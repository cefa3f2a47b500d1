package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDepartments() []map[string]interface{} {
	return []map[string]interface{}{
		{"code": "DEP-1", "name": "Cardiology", "location": "A", "description": "heart care", "email": "cardio@example.com"},
		{"code": "DEP-2", "name": "Neurology", "location": "A", "description": "brain care", "email": "neuro@example.com"},
		{"code": "DEP-3", "name": "Oncology", "location": "B", "description": "cancer care", "email": "onco@example.com"},
	}
}

func TestFilterDepartments_ByLocation(t *testing.T) {
	filtered := FilterDepartments(sampleDepartments(), "", "A")

	require.Len(t, filtered, 2)
	assert.Equal(t, "DEP-1", filtered[0]["code"])
	assert.Equal(t, "DEP-2", filtered[1]["code"])
}

func TestFilterDepartments_SearchIsCaseInsensitive(t *testing.T) {
	filtered := FilterDepartments(sampleDepartments(), "CARDIO", "")

	require.Len(t, filtered, 1)
	assert.Equal(t, "DEP-1", filtered[0]["code"])
}

func TestFilterDepartments_Conjunction(t *testing.T) {
	// "care" matches every description, the location narrows it down
	filtered := FilterDepartments(sampleDepartments(), "care", "B")

	require.Len(t, filtered, 1)
	assert.Equal(t, "DEP-3", filtered[0]["code"])
}

func TestFilterDoctors_ByDepartmentName(t *testing.T) {
	doctors := []map[string]interface{}{
		{"code": "DOC-1", "name": "Dr. Ahmed", "speciality": "Cardiac Surgery", "email": "a@example.com", "departmentName": "Cardiology"},
		{"code": "DOC-2", "name": "Dr. Sara", "speciality": "Neurosurgery", "email": "s@example.com", "departmentName": "Neurology"},
	}
	filtered := FilterDoctors(doctors, "", "Cardiology")

	require.Len(t, filtered, 1)
	assert.Equal(t, "DOC-1", filtered[0]["code"])
}

func TestRepairSelection_KeepsVisibleSelection(t *testing.T) {
	filtered := sampleDepartments()

	selected, ok := RepairSelection(filtered, "DEP-2")

	require.True(t, ok)
	assert.Equal(t, "DEP-2", selected["code"])
}

func TestRepairSelection_ReplacesHiddenSelection(t *testing.T) {
	filtered := FilterDepartments(sampleDepartments(), "", "A")

	selected, ok := RepairSelection(filtered, "DEP-3")

	require.True(t, ok)
	assert.Equal(t, "DEP-1", selected["code"])
}

func TestRepairSelection_EmptyList(t *testing.T) {
	selected, ok := RepairSelection(nil, "DEP-1")

	assert.False(t, ok)
	assert.Nil(t, selected)
}
