package services

import "testing"

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bỏ dấu", "Đà Nẵng", "da nang"},
		{"thường hóa", "HA NOI", "ha noi"},
		{"cắt khoảng trắng", "  Hue  ", "hue"},
		{"chuỗi rỗng", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCity(tt.input); got != tt.want {
				t.Errorf("NormalizeCity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCityMatches(t *testing.T) {
	if !CityMatches("Đà Nẵng", "da nang") {
		t.Error("kỳ vọng khớp khi bỏ dấu")
	}
	if !CityMatches("Hồ Chí Minh", "chi minh") {
		t.Error("kỳ vọng khớp chuỗi con")
	}
	if CityMatches("Hà Nội", "Đà Nẵng") {
		t.Error("không được khớp thành phố khác")
	}
	if !CityMatches("Hà Nội", "") {
		t.Error("bộ lọc rỗng phải khớp mọi thành phố")
	}
}

func TestSuggestCity(t *testing.T) {
	cities := []string{"Hà Nội", "Đà Nẵng", "Hồ Chí Minh", "Huế"}

	if got := SuggestCity(cities, "da nag"); got != "da nang" {
		t.Errorf("SuggestCity(%q) = %q, want %q", "da nag", got, "da nang")
	}

	if got := SuggestCity(nil, "da nang"); got != "" {
		t.Errorf("danh sách rỗng phải trả về chuỗi rỗng, got %q", got)
	}

	if got := SuggestCity(cities, ""); got != "" {
		t.Errorf("truy vấn rỗng phải trả về chuỗi rỗng, got %q", got)
	}
}
