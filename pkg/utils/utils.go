package utils

import (
	"encoding/json"
	"math"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func ErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{
		"error": message,
	})
}

// Round rounds half away from zero to the given number of decimal places.
func Round(value float64, places int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	p := math.Pow(10, float64(places))
	return math.Round(value*p) / p
}

// Percentage returns part/whole*100 rounded to places, and 0 when whole is zero.
func Percentage(part, whole float64, places int) float64 {
	if whole == 0 {
		return 0
	}
	return Round(part/whole*100, places)
}
