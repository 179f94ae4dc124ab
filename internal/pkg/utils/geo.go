package utils

import (
	"math"
	"strconv"
	"strings"
)

const earthRadiusKm = 6371.0

// Масштаб фиксированной точки в координатах KorService2:
// целочисленная строка mapx/mapy делится на 1e7 для получения градусов.
const coordScale = 1e7

// Допустимые диапазоны для Корейского полуострова.
const (
	minLongitude = 124.0
	maxLongitude = 132.0
	minLatitude  = 33.0
	maxLatitude  = 43.0

	minRawX = minLongitude * coordScale
	maxRawX = maxLongitude * coordScale
	minRawY = minLatitude * coordScale
	maxRawY = maxLatitude * coordScale
)

// Coordinate - географические координаты в десятичных градусах
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// CoordinateValidation - результат валидации одной координатной оси
type CoordinateValidation struct {
	Value    float64  `json:"value"`
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

// Причины невалидности координаты. Отдельные значения, не один bool.
const (
	CoordProblemEmpty      = "empty"
	CoordProblemNotNumeric = "not_numeric"
	CoordProblemRawRange   = "raw_out_of_range"
	CoordProblemDegRange   = "degrees_out_of_range"
)

// ConvertMapCoordinates переводит fixed-point координаты upstream в градусы.
// Нечисловой ввод даёт NaN - проверка на вызывающей стороне.
func ConvertMapCoordinates(rawX, rawY string) Coordinate {
	return Coordinate{
		Lon: convertAxis(rawX),
		Lat: convertAxis(rawY),
	}
}

func convertAxis(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v / coordScale
}

// ValidateMapX валидирует сырую координату долготы (mapx).
func ValidateMapX(raw string) CoordinateValidation {
	return validateAxis(raw, minRawX, maxRawX, minLongitude, maxLongitude)
}

// ValidateMapY валидирует сырую координату широты (mapy).
func ValidateMapY(raw string) CoordinateValidation {
	return validateAxis(raw, minRawY, maxRawY, minLatitude, maxLatitude)
}

func validateAxis(raw string, minRaw, maxRaw, minDeg, maxDeg float64) CoordinateValidation {
	result := CoordinateValidation{Value: math.NaN()}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		result.Problems = append(result.Problems, CoordProblemEmpty)
		return result
	}

	rawValue, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		result.Problems = append(result.Problems, CoordProblemNotNumeric)
		return result
	}

	converted := rawValue / coordScale
	result.Value = converted

	if rawValue < minRaw || rawValue > maxRaw {
		result.Problems = append(result.Problems, CoordProblemRawRange)
	}
	if converted < minDeg || converted > maxDeg {
		result.Problems = append(result.Problems, CoordProblemDegRange)
	}

	result.Valid = len(result.Problems) == 0
	return result
}

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidateCoordinates проверяет валидность координат в градусах
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
