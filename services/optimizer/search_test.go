package optimizer

import (
	"context"
	"testing"

	"quickstay/constants"
	"quickstay/models"
)

func makeRoom(id uint, roomType string, price float64, minA, maxA, minC, maxC int) *models.Room {
	return &models.Room{
		RoomId:        id,
		RoomType:      roomType,
		PricePerNight: price,
		MinAdults:     minA,
		MaxAdults:     maxA,
		MinChildren:   minC,
		MaxChildren:   maxC,
		IsAvailable:   true,
	}
}

// verifyCombinations chạy các bất biến bắt buộc trên mọi tổ hợp trả về:
// phủ đúng số khách và tôn trọng giới hạn từng phòng
func verifyCombinations(t *testing.T, combos []Combination, adults, children int) {
	t.Helper()
	for ci, combo := range combos {
		sumA, sumC := 0, 0
		for ai, as := range combo {
			sumA += as.Adults
			sumC += as.Children
			r := as.Room
			if as.Adults < r.MinAdults || as.Adults > r.MaxAdults {
				t.Errorf("combo %d assignment %d: %d người lớn ngoài khoảng [%d,%d]", ci, ai, as.Adults, r.MinAdults, r.MaxAdults)
			}
			if as.Children < r.MinChildren || as.Children > r.MaxChildren {
				t.Errorf("combo %d assignment %d: %d trẻ em ngoài khoảng [%d,%d]", ci, ai, as.Children, r.MinChildren, r.MaxChildren)
			}
			if as.Adults+as.Children > r.MaxCapacity() {
				t.Errorf("combo %d assignment %d: %d khách vượt trần sức chứa %d", ci, ai, as.Adults+as.Children, r.MaxCapacity())
			}
		}
		if sumA != adults || sumC != children {
			t.Errorf("combo %d: phủ (%d, %d), want (%d, %d)", ci, sumA, sumC, adults, children)
		}
	}
}

func TestGenerateCombinationsExactCoverage(t *testing.T) {
	rooms := []*models.Room{
		makeRoom(1, constants.RoomTypeFamilySuite, 100, 1, 4, 0, 3),
		makeRoom(2, constants.RoomTypeDouble, 50, 1, 2, 0, 1),
		makeRoom(3, constants.RoomTypeSingle, 30, 1, 1, 0, 0),
	}

	combos := GenerateCombinations(context.Background(), rooms, 10, 2, DefaultBudget())
	if len(combos) == 0 {
		t.Fatal("không tìm được tổ hợp nào cho 10 người lớn, 2 trẻ em")
	}
	verifyCombinations(t, combos, 10, 2)
}

func TestGenerateCombinationsResultCap(t *testing.T) {
	var rooms []*models.Room
	for i := uint(1); i <= 20; i++ {
		rooms = append(rooms, makeRoom(i, constants.RoomTypeDouble, float64(40+i), 1, 2, 0, 2))
	}

	budget := DefaultBudget()
	combos := GenerateCombinations(context.Background(), rooms, 12, 0, budget)
	if len(combos) > budget.MaxCombinations {
		t.Errorf("trả về %d tổ hợp, vượt trần %d", len(combos), budget.MaxCombinations)
	}
	verifyCombinations(t, combos, 12, 0)
}

func TestGenerateCombinationsEmptyPool(t *testing.T) {
	combos := GenerateCombinations(context.Background(), nil, 10, 0, DefaultBudget())
	if len(combos) != 0 {
		t.Errorf("pool rỗng phải cho 0 tổ hợp, got %d", len(combos))
	}
}

func TestGenerateCombinationsSingleRoomType(t *testing.T) {
	// Một loại phòng gia đình chứa 1..5 người lớn: các cách phủ 10 người lớn
	// là lặp lại phòng đó, ví dụ 2x5, 5x2, 10x1
	rooms := []*models.Room{
		makeRoom(7, constants.RoomTypeFamilySuite, 100, 1, 5, 0, 0),
	}

	combos := GenerateCombinations(context.Background(), rooms, 10, 0, DefaultBudget())
	verifyCombinations(t, combos, 10, 0)

	want := map[int]bool{2: false, 5: false, 10: false}
	for _, combo := range combos {
		if _, ok := want[len(combo)]; ok {
			want[len(combo)] = true
		}
	}
	for n, found := range want {
		if !found {
			t.Errorf("thiếu tổ hợp dùng %d phòng", n)
		}
	}

	// Sau dedup + xếp sơ bộ, tổ hợp ít phòng nhất đứng đầu
	if len(combos) > 0 && len(combos[0]) != 2 {
		t.Errorf("tổ hợp đầu dùng %d phòng, want 2", len(combos[0]))
	}
}

func TestGenerateCombinationsInventoryLimit(t *testing.T) {
	// Chỉ còn 2 phòng loại này: không thể phủ 10 người lớn (cần tối thiểu 5 phòng)
	room := makeRoom(9, constants.RoomTypeDouble, 50, 1, 2, 0, 0)
	room.Num = 2

	combos := GenerateCombinations(context.Background(), []*models.Room{room}, 10, 0, DefaultBudget())
	if len(combos) != 0 {
		t.Errorf("kho chỉ có 2 phòng nhưng vẫn sinh %d tổ hợp", len(combos))
	}

	// Num = 0 nghĩa là không giới hạn kho, phủ được bằng 5 phòng
	room.Num = 0
	combos = GenerateCombinations(context.Background(), []*models.Room{room}, 10, 0, DefaultBudget())
	if len(combos) == 0 {
		t.Error("kho không giới hạn nhưng không tìm được tổ hợp nào")
	}
	verifyCombinations(t, combos, 10, 0)
}

func TestGenerateCombinationsRespectsMaxSteps(t *testing.T) {
	var rooms []*models.Room
	for i := uint(1); i <= 30; i++ {
		rooms = append(rooms, makeRoom(i, constants.RoomTypeDouble, 50, 1, 2, 0, 2))
	}

	budget := DefaultBudget()
	budget.MaxSteps = 5

	combos := GenerateCombinations(context.Background(), rooms, 20, 5, budget)
	// Hết ngân sách bước không phải lỗi, chỉ trả về những gì đã tìm thấy
	verifyCombinations(t, combos, 20, 5)
}

func TestGenerateCombinationsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rooms := []*models.Room{
		makeRoom(1, constants.RoomTypeDouble, 50, 1, 2, 0, 2),
	}
	combos := GenerateCombinations(ctx, rooms, 10, 0, DefaultBudget())
	if len(combos) != 0 {
		t.Errorf("context đã hủy nhưng vẫn sinh %d tổ hợp", len(combos))
	}
}

func TestSortRoomsForSearch(t *testing.T) {
	cheapBig := makeRoom(1, constants.RoomTypeFamilySuite, 100, 1, 4, 0, 3) // 100/7 mỗi chỗ
	midSmall := makeRoom(2, constants.RoomTypeDouble, 60, 1, 2, 0, 1)      // 60/3 mỗi chỗ
	expensive := makeRoom(3, constants.RoomTypeSingle, 90, 1, 1, 0, 0)     // 90/1 mỗi chỗ
	sameRateSmaller := makeRoom(4, constants.RoomTypeDouble, 50, 1, 2, 0, 1)
	sameRateBigger := makeRoom(5, constants.RoomTypeFamilySuite, 100, 1, 4, 0, 2)

	sorted := sortRoomsForSearch([]*models.Room{expensive, midSmall, cheapBig, sameRateSmaller, sameRateBigger})

	// cheapBig (~14.3), sameRateBigger và sameRateSmaller (~16.7, sức chứa lớn trước),
	// midSmall (20), expensive (90)
	wantOrder := []uint{1, 5, 4, 2, 3}
	for i, room := range sorted {
		if room.RoomId != wantOrder[i] {
			t.Errorf("vị trí %d: phòng %d, want %d", i, room.RoomId, wantOrder[i])
		}
	}
}
