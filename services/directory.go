package services

import (
	"context"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/config/db"
	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

var departmentSearchFields = []string{"name", "location", "email", "description"}
var doctorSearchFields = []string{"name", "speciality", "email"}

// matchesSearch is a case-insensitive substring match over the given fields.
func matchesSearch(doc map[string]interface{}, query string, fields []string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if v, ok := doc[f].(string); ok && strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func matchesCategory(doc map[string]interface{}, field string, value string) bool {
	if value == "" {
		return true
	}
	v, _ := doc[field].(string)
	return strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(value))
}

// FilterDepartments applies the search and location predicates as a
// conjunction, preserving source order.
func FilterDepartments(list []map[string]interface{}, search string, location string) []map[string]interface{} {
	filtered := []map[string]interface{}{}
	for _, d := range list {
		if matchesSearch(d, search, departmentSearchFields) && matchesCategory(d, "location", location) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func FilterDoctors(list []map[string]interface{}, search string, department string) []map[string]interface{} {
	filtered := []map[string]interface{}{}
	for _, d := range list {
		if matchesSearch(d, search, doctorSearchFields) && matchesCategory(d, "departmentName", department) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

/*
* The detail panel must never point at a record hidden by a fresh filter
* A missing selection falls back to the first filtered record
* An empty filtered set detail selects nothing
 */
func RepairSelection(filtered []map[string]interface{}, currentCode string) (map[string]interface{}, bool) {
	if len(filtered) == 0 {
		return nil, false
	}
	if currentCode != "" {
		for _, d := range filtered {
			if getString(d, "code") == currentCode {
				return d, true
			}
		}
	}
	return filtered[0], true
}

/*
* One query for the departments, one $in query for all their doctors
* The doctors are grouped in memory and inlined under each department
 */
func ListDepartmentsWithDoctors(ctx context.Context, search string, location string) ([]map[string]interface{}, error) {
	departments, err := FetchAllDepartments(ctx)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(departments))
	for _, d := range departments {
		if code := getString(d, "code"); code != "" {
			codes = append(codes, code)
		}
	}

	byDepartment := map[string][]map[string]interface{}{}
	if len(codes) > 0 {
		doctorColl := db.OpenCollections(util.DoctorCollection)
		doctors, err := db.FindAll(ctx, doctorColl, bson.M{"departmentId": bson.M{"$in": codes}}, nil)
		if err != nil {
			log.Println("Error from findAll on doctors: ", err)
			return nil, util.NewPersistenceError(err)
		}
		for _, doc := range doctors {
			deptId := getString(doc, "departmentId")
			byDepartment[deptId] = append(byDepartment[deptId], doc)
		}
	}
	for _, d := range departments {
		doctors := byDepartment[getString(d, "code")]
		if doctors == nil {
			doctors = []map[string]interface{}{}
		}
		d["doctors"] = doctors
	}
	return FilterDepartments(departments, search, location), nil
}

/*
* One query for the doctors, one $in query for their departments
* Each doctor gets its department inlined for display
 */
func ListDoctorsWithDepartment(ctx context.Context, search string, department string) ([]map[string]interface{}, error) {
	doctors, err := FetchAllDoctors(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	codes := []string{}
	for _, d := range doctors {
		code := getString(d, "departmentId")
		if code != "" && !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	departmentsById := map[string]map[string]interface{}{}
	if len(codes) > 0 {
		deptColl := db.OpenCollections(util.DepartmentCollection)
		departments, err := db.FindAll(ctx, deptColl, bson.M{"code": bson.M{"$in": codes}}, nil)
		if err != nil {
			log.Println("Error from findAll on departments: ", err)
			return nil, util.NewPersistenceError(err)
		}
		for _, dept := range departments {
			departmentsById[getString(dept, "code")] = dept
		}
	}
	for _, d := range doctors {
		if dept, ok := departmentsById[getString(d, "departmentId")]; ok {
			d["department"] = dept
		}
	}
	return FilterDoctors(doctors, search, department), nil
}
