package optimizer

import (
	"testing"

	"quickstay/constants"
)

func TestDedupIdempotence(t *testing.T) {
	r1 := makeRoom(1, constants.RoomTypeDouble, 50, 1, 2, 0, 1)
	r2 := makeRoom(2, constants.RoomTypeFamilySuite, 100, 1, 4, 0, 2)

	// Cùng multiset phân bổ, thứ tự liệt kê khác nhau
	comboA := Combination{
		{Room: r1, Adults: 2, Children: 0},
		{Room: r2, Adults: 4, Children: 2},
	}
	comboB := Combination{
		{Room: r2, Adults: 4, Children: 2},
		{Room: r1, Adults: 2, Children: 0},
	}

	unique := dedupAndPreRank([]Combination{comboA, comboB}, 10)
	if len(unique) != 1 {
		t.Fatalf("hai tổ hợp trùng nhau phải còn 1, got %d", len(unique))
	}
}

func TestDedupKeepsDistinctSplits(t *testing.T) {
	r1 := makeRoom(1, constants.RoomTypeDouble, 50, 1, 2, 0, 2)

	// Cùng phòng nhưng cách chia khách khác nhau là hai phương án khác nhau
	comboA := Combination{
		{Room: r1, Adults: 2, Children: 0},
		{Room: r1, Adults: 1, Children: 2},
	}
	comboB := Combination{
		{Room: r1, Adults: 2, Children: 1},
		{Room: r1, Adults: 1, Children: 1},
	}

	unique := dedupAndPreRank([]Combination{comboA, comboB}, 10)
	if len(unique) != 2 {
		t.Fatalf("hai cách chia khác nhau phải giữ cả 2, got %d", len(unique))
	}
}

func TestPreRankOrder(t *testing.T) {
	cheap := makeRoom(1, constants.RoomTypeDouble, 40, 1, 2, 0, 0)
	pricey := makeRoom(2, constants.RoomTypeDouble, 90, 1, 2, 0, 0)

	three := Combination{
		{Room: cheap, Adults: 2}, {Room: cheap, Adults: 2}, {Room: cheap, Adults: 2},
	}
	twoPricey := Combination{
		{Room: pricey, Adults: 2}, {Room: pricey, Adults: 2},
	}
	twoCheap := Combination{
		{Room: cheap, Adults: 2}, {Room: cheap, Adults: 2},
	}

	ranked := dedupAndPreRank([]Combination{three, twoPricey, twoCheap}, 10)

	// Ít phòng trước, cùng số phòng thì tổng giá đêm thấp trước
	if len(ranked) != 3 {
		t.Fatalf("got %d tổ hợp, want 3", len(ranked))
	}
	if len(ranked[0]) != 2 || ranked[0][0].Room.RoomId != 1 {
		t.Errorf("vị trí 0 phải là 2 phòng rẻ, got %d phòng, phòng %d", len(ranked[0]), ranked[0][0].Room.RoomId)
	}
	if len(ranked[1]) != 2 || ranked[1][0].Room.RoomId != 2 {
		t.Errorf("vị trí 1 phải là 2 phòng đắt, got %d phòng, phòng %d", len(ranked[1]), ranked[1][0].Room.RoomId)
	}
	if len(ranked[2]) != 3 {
		t.Errorf("vị trí 2 phải là tổ hợp 3 phòng, got %d phòng", len(ranked[2]))
	}
}

func TestPriceCombination(t *testing.T) {
	double := makeRoom(1, constants.RoomTypeDouble, 100, 1, 2, 0, 1)
	single := makeRoom(2, constants.RoomTypeSingle, 30, 1, 1, 0, 0)

	combo := Combination{
		{Room: double, Adults: 1, Children: 0}, // phụ phí 1.5x
		{Room: single, Adults: 1, Children: 0},
	}

	sol := PriceCombination(combo, 2)
	if sol.TotalRooms != 2 {
		t.Errorf("TotalRooms = %d, want 2", sol.TotalRooms)
	}
	if sol.Nights != 2 {
		t.Errorf("Nights = %d, want 2", sol.Nights)
	}
	// (100*1.5 + 30) * 2 đêm = 360
	if sol.TotalCents != 36000 {
		t.Errorf("TotalCents = %d, want 36000", sol.TotalCents)
	}
	if sol.Assignments[0].PriceCents != 30000 {
		t.Errorf("giá phòng đôi = %d, want 30000", sol.Assignments[0].PriceCents)
	}
}

func TestRankSolutionsTieBreak(t *testing.T) {
	// Hai phương án cùng tổng giá (tính theo xu): ít phòng hơn xếp trước
	solutions := []Solution{
		{TotalCents: 15000, TotalRooms: 3},
		{TotalCents: 15000, TotalRooms: 2},
		{TotalCents: 12000, TotalRooms: 4},
	}

	ranked := RankSolutions(solutions, 10)
	if ranked[0].TotalCents != 12000 {
		t.Errorf("rẻ nhất phải đứng đầu, got %d", ranked[0].TotalCents)
	}
	if ranked[1].TotalRooms != 2 {
		t.Errorf("cùng giá thì ít phòng đứng trước, got %d phòng", ranked[1].TotalRooms)
	}
	if ranked[2].TotalRooms != 3 {
		t.Errorf("vị trí cuối phải là 3 phòng, got %d", ranked[2].TotalRooms)
	}
}

func TestRankSolutionsTruncates(t *testing.T) {
	var solutions []Solution
	for i := 0; i < 25; i++ {
		solutions = append(solutions, Solution{TotalCents: int64(1000 + i), TotalRooms: 1})
	}

	ranked := RankSolutions(solutions, 10)
	if len(ranked) != 10 {
		t.Errorf("got %d phương án, want 10", len(ranked))
	}
	if ranked[0].TotalCents != 1000 {
		t.Errorf("phương án rẻ nhất = %d, want 1000", ranked[0].TotalCents)
	}
}
