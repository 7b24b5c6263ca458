package optimizer

import (
	"context"
	"math"
	"sort"

	"quickstay/models"
)

// sortRoomsForSearch sắp phòng theo giá trên mỗi chỗ nằm tăng dần, cùng giá thì
// sức chứa lớn xếp trước. Nhờ vậy các nhánh đầu tiên của cây tìm kiếm ưu tiên
// phòng rẻ và chứa được nhiều khách, tăng khả năng tìm ra phương án tốt trước
// khi hết ngân sách tìm kiếm.
func sortRoomsForSearch(rooms []*models.Room) []*models.Room {
	sorted := make([]*models.Room, len(rooms))
	copy(sorted, rooms)

	sort.SliceStable(sorted, func(i, j int) bool {
		capI := sorted[i].MaxCapacity()
		capJ := sorted[j].MaxCapacity()

		// Phòng không chứa được ai xếp cuối
		if capI == 0 || capJ == 0 {
			return capI > capJ
		}

		// So sánh price/capacity bằng nhân chéo để tránh sai số float
		perSlotI := toCents(sorted[i].PricePerNight) * int64(capJ)
		perSlotJ := toCents(sorted[j].PricePerNight) * int64(capI)
		if perSlotI != perSlotJ {
			return perSlotI < perSlotJ
		}
		return capI > capJ
	})

	return sorted
}

// frame một node trên cây tìm kiếm: vị trí phòng đang xét, số khách còn lại
// và tổ hợp đã gom được trên đường đi
type frame struct {
	idx   int
	depth int
	remA  int
	remC  int
	combo Combination
}

// ceilDiv chia làm tròn lên, mẫu bằng 0 coi như không ràng buộc
func ceilDiv(x, y int) int {
	if y == 0 {
		return math.MaxInt32
	}
	return (x + y - 1) / y
}

// slotCap số phòng cùng loại tối đa có thể dùng cho một phân bổ (a, c):
// đủ để phủ số khách còn lại, không vượt số phòng thực có và trần ngân sách
func slotCap(room *models.Room, remA, remC, a, c int, budget SearchBudget) int {
	maxRooms := ceilDiv(remA, a)
	if byChildren := ceilDiv(remC, c); byChildren < maxRooms {
		maxRooms = byChildren
	}
	if maxRooms > budget.MaxRoomsPerSlot {
		maxRooms = budget.MaxRoomsPerSlot
	}
	if room.Num > 0 && maxRooms > room.Num {
		maxRooms = room.Num
	}
	return maxRooms
}

// GenerateCombinations liệt kê các tổ hợp phòng phủ đúng số người lớn và trẻ em
// yêu cầu. Duyệt theo chiều sâu trên một stack tường minh: mỗi loại phòng là một
// "slot" được dùng 0..n lần rồi mới chuyển sang loại kế tiếp, nên không sinh ra
// các hoán vị của cùng một tập phòng. Đây là tìm kiếm heuristic có giới hạn,
// không đảm bảo vét cạn hay tối ưu toàn cục; hết hạn context cũng được coi như
// hết ngân sách, trả về những gì đã tìm thấy.
func GenerateCombinations(ctx context.Context, rooms []*models.Room, adults, children int, budget SearchBudget) []Combination {
	if len(rooms) == 0 {
		return nil
	}

	sorted := sortRoomsForSearch(rooms)

	var found []Combination
	steps := 0
	stack := []frame{{idx: 0, remA: adults, remC: children}}

	for len(stack) > 0 {
		if ctx.Err() != nil {
			break
		}
		steps++
		if budget.MaxSteps > 0 && steps > budget.MaxSteps {
			break
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Tất cả khách đã được phân bổ
		if f.remA == 0 && f.remC == 0 {
			found = append(found, f.combo)
			if len(found) >= budget.MaxCombinations {
				break
			}
			continue
		}

		if len(found) >= budget.MaxCombinations || f.depth > budget.MaxDepth || f.idx >= len(sorted) {
			continue
		}

		room := sorted[f.idx]

		// Nhánh bỏ qua phòng này push trước nên được xét sau cùng (LIFO)
		stack = append(stack, frame{idx: f.idx + 1, depth: f.depth, remA: f.remA, remC: f.remC, combo: f.combo})

		maxA := f.remA
		if room.MaxAdults < maxA {
			maxA = room.MaxAdults
		}
		maxC := f.remC
		if room.MaxChildren < maxC {
			maxC = room.MaxChildren
		}

		// Các nhánh con push theo thứ tự ngược để pop ra đúng thứ tự tăng dần
		for a := maxA; a >= room.MinAdults; a-- {
			for c := maxC; c >= room.MinChildren; c-- {
				// Trần sức chứa gộp của phòng là ràng buộc cuối cùng
				if a+c > room.MaxCapacity() {
					continue
				}
				// Không xếp phòng trống khách
				if a == 0 && c == 0 {
					continue
				}

				maxRooms := slotCap(room, f.remA, f.remC, a, c, budget)
				for count := maxRooms; count >= 1; count-- {
					usedA := a * count
					usedC := c * count
					if usedA > f.remA || usedC > f.remC {
						continue
					}

					combo := make(Combination, 0, len(f.combo)+count)
					combo = append(combo, f.combo...)
					for k := 0; k < count; k++ {
						combo = append(combo, Assignment{Room: room, Adults: a, Children: c})
					}

					stack = append(stack, frame{
						idx:   f.idx + 1,
						depth: f.depth + 1,
						remA:  f.remA - usedA,
						remC:  f.remC - usedC,
						combo: combo,
					})
				}
			}
		}
	}

	return dedupAndPreRank(found, budget.MaxCombinations)
}
