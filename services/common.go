package services

import (
	"encoding/base64"
	"log"
	"strconv"
	"strings"

	"github.com/huzaifaahmed2004/Care-Coord-sub002/util"
)

// ClampFeePercentage bounds a surcharge percentage to [0,100].
func ClampFeePercentage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func getString(doc map[string]interface{}, key string) string {
	v, _ := doc[key].(string)
	return strings.TrimSpace(v)
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func requireFields(data map[string]interface{}, required map[string]string) error {
	for field, message := range required {
		if getString(data, field) == "" {
			return util.NewValidationError(message)
		}
	}
	return nil
}

/*
* The client sends raw image bytes base64 encoded under imageData
* Encode them into an embeddable data URL under image
* An oversized or unreadable upload never blocks the save, the record gets
* a deterministic placeholder keyed off its name instead
 */
func applyImage(data map[string]interface{}, seed string, pool []string) {
	raw, ok := data["imageData"].(string)
	if !ok || raw == "" {
		if getString(data, "image") == "" {
			data["image"] = util.PickFallback(seed, pool)
		}
		return
	}
	delete(data, "imageData")

	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		log.Println("Unreadable image upload, using placeholder: ", err)
		data["image"] = util.PickFallback(seed, pool)
		return
	}
	encoded, err := util.EncodeImage(decoded)
	if err != nil {
		log.Println("Image encode failed, using placeholder: ", err)
		data["image"] = util.PickFallback(seed, pool)
		return
	}
	data["image"] = encoded
}

// applyImageUpdate is the partial-update variant: a request that carries no
// upload leaves the stored image alone instead of planting a placeholder.
func applyImageUpdate(data map[string]interface{}, seed string, pool []string) {
	if getString(data, "imageData") == "" {
		delete(data, "imageData")
		return
	}
	applyImage(data, seed, pool)
}

func clampFeeField(data map[string]interface{}) {
	if raw, exists := data["feePercentage"]; exists {
		if pct, ok := toFloat64(raw); ok {
			data["feePercentage"] = ClampFeePercentage(pct)
		} else {
			data["feePercentage"] = float64(0)
		}
	}
}
