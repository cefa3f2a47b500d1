package util

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes is the ceiling for an image embedded inside a document.
const MaxImageBytes = 800 * 1024

// Placeholder pools used when an upload fails to encode or a record carries
// no image. Selection is keyed off the entity name so the same name always
// maps to the same placeholder.
var (
	DoctorFallbackImages = []string{
		"/images/fallback/doctor-1.jpg",
		"/images/fallback/doctor-2.jpg",
		"/images/fallback/doctor-3.jpg",
		"/images/fallback/doctor-4.jpg",
	}
	DepartmentFallbackImages = []string{
		"/images/fallback/department-1.jpg",
		"/images/fallback/department-2.jpg",
		"/images/fallback/department-3.jpg",
	}
)

/*
* Reject anything over the size ceiling
* Sniff the MIME type and store it in the data URL so decode does not have
* to guess the format later
 */
func EncodeImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", NewEncodingError("image is empty")
	}
	if len(data) > MaxImageBytes {
		return "", NewEncodingError("image exceeds the 800KiB limit")
	}
	mime := mimetype.Detect(data).String()
	if !strings.HasPrefix(mime, "image/") {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeImage turns raw stored bytes into a displayable data URL. Bytes that
// do not sniff as an image are served as image/jpeg, matching how older
// records were written.
func DecodeImage(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	mime := mimetype.Detect(data).String()
	if !strings.HasPrefix(mime, "image/") {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

/*
* Sum the byte codes of the seed
* Mod by the pool size and index into the pool
 */
func PickFallback(seed string, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	sum := 0
	for _, b := range []byte(seed) {
		sum += int(b)
	}
	return pool[sum%len(pool)]
}
