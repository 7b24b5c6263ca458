package optimizer

import (
	"fmt"
	"sort"
	"strings"
)

// dedupKey khóa nhận dạng một tổ hợp: multiset các bộ (phòng, người lớn, trẻ em),
// không phụ thuộc thứ tự liệt kê
func (c Combination) dedupKey() string {
	parts := make([]string, len(c))
	for i, as := range c {
		parts[i] = fmt.Sprintf("%d-%d-%d", as.Room.RoomId, as.Adults, as.Children)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// nightlySumCents tổng giá đêm thô của tổ hợp, chưa tính phụ phí và số đêm
func nightlySumCents(c Combination) int64 {
	var sum int64
	for _, as := range c {
		sum += toCents(as.Room.PricePerNight)
	}
	return sum
}

// dedupAndPreRank loại tổ hợp trùng rồi xếp sơ bộ theo số phòng tăng dần,
// cùng số phòng thì theo tổng giá đêm thô. Thứ tự này chỉ quyết định những
// tổ hợp nào được đưa vào bước tính giá đầy đủ, không phải thứ hạng cuối.
func dedupAndPreRank(combos []Combination, limit int) []Combination {
	seen := make(map[string]bool)
	unique := make([]Combination, 0, len(combos))
	for _, combo := range combos {
		key := combo.dedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, combo)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if len(unique[i]) != len(unique[j]) {
			return len(unique[i]) < len(unique[j])
		}
		return nightlySumCents(unique[i]) < nightlySumCents(unique[j])
	})

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

// PriceCombination tính giá từng phân bổ trong tổ hợp và gom thành Solution
func PriceCombination(combo Combination, nights int) Solution {
	assignments := make([]Assignment, len(combo))
	var total int64
	for i, as := range combo {
		as.PriceCents = PriceCents(as.Room, as.Adults, as.Children, nights)
		total += as.PriceCents
		assignments[i] = as
	}
	return Solution{
		Assignments: assignments,
		TotalCents:  total,
		TotalRooms:  len(assignments),
		Nights:      nights,
	}
}

// RankSolutions xếp hạng cuối cùng: tổng giá tăng dần, hai phương án cùng giá
// (tính theo xu nên không còn sai số epsilon) thì ít phòng hơn đứng trước.
// Cắt còn tối đa limit phương án.
func RankSolutions(solutions []Solution, limit int) []Solution {
	sort.SliceStable(solutions, func(i, j int) bool {
		if solutions[i].TotalCents != solutions[j].TotalCents {
			return solutions[i].TotalCents < solutions[j].TotalCents
		}
		return solutions[i].TotalRooms < solutions[j].TotalRooms
	})
	if len(solutions) > limit {
		solutions = solutions[:limit]
	}
	return solutions
}
