package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
)

// NormalizeCity chuẩn hóa tên thành phố: bỏ dấu, thường hóa, cắt khoảng trắng
func NormalizeCity(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// CityMatches so khớp gần đúng tên thành phố, không phân biệt hoa thường và dấu
func CityMatches(city, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(NormalizeCity(city), NormalizeCity(filter))
}

// SuggestCity gợi ý thành phố gần đúng nhất khi bộ lọc không khớp với đâu cả
func SuggestCity(cities []string, query string) string {
	if len(cities) == 0 || query == "" {
		return ""
	}

	seen := make(map[string]bool)
	normalized := make([]string, 0, len(cities))
	for _, city := range cities {
		n := NormalizeCity(city)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}

	cm := closestmatch.New(normalized, []int{2, 3})
	return cm.Closest(NormalizeCity(query))
}
