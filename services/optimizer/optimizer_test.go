package optimizer

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"quickstay/constants"
	qserrors "quickstay/errors"
	"quickstay/models"
)

// fakeChecker giả lập Availability Oracle, trả lời theo map cấu hình sẵn
type fakeChecker struct {
	mu          sync.Mutex
	unavailable map[uint]bool
	err         error
	calls       int
}

func (f *fakeChecker) CheckAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	return !f.unavailable[roomID], nil
}

func testDates(t *testing.T, nights int) (time.Time, time.Time) {
	t.Helper()
	checkIn, err := time.Parse("02/01/2006", "10/03/2026")
	if err != nil {
		t.Fatalf("parse checkIn: %v", err)
	}
	return checkIn, checkIn.AddDate(0, 0, nights)
}

func newTestOptimizer(checker AvailabilityChecker) *Optimizer {
	return New(Options{Checker: checker})
}

func groupPool() []*models.Room {
	return []*models.Room{
		makeRoom(1, constants.RoomTypeFamilySuite, 100, 1, 4, 0, 3),
		makeRoom(2, constants.RoomTypeDouble, 50, 1, 2, 0, 1),
		makeRoom(3, constants.RoomTypeSingle, 30, 1, 1, 0, 0),
	}
}

func TestOptimizeValidation(t *testing.T) {
	o := newTestOptimizer(&fakeChecker{})
	checkIn, checkOut := testDates(t, 2)

	_, err := o.Optimize(context.Background(), Request{Adults: 0, CheckIn: checkIn, CheckOut: checkOut})
	if err == nil {
		t.Fatal("0 người lớn phải bị từ chối")
	}
	if !qserrors.IsAppError(err) {
		t.Errorf("lỗi validation phải là AppError, got %T", err)
	}

	_, err = o.Optimize(context.Background(), Request{Adults: 2, Children: -1, CheckIn: checkIn, CheckOut: checkOut})
	if err == nil {
		t.Fatal("số trẻ em âm phải bị từ chối")
	}

	_, err = o.Optimize(context.Background(), Request{Adults: 2, CheckIn: checkOut, CheckOut: checkIn})
	if err == nil {
		t.Fatal("ngày trả phòng trước ngày nhận phòng phải bị từ chối")
	}
}

func TestOptimizePathThreshold(t *testing.T) {
	o := newTestOptimizer(&fakeChecker{})
	checkIn, checkOut := testDates(t, 1)
	rooms := groupPool()

	// 9 khách: nhánh đề xuất phòng riêng lẻ
	res, err := o.Optimize(context.Background(), Request{Rooms: rooms, Adults: 4, Children: 5, CheckIn: checkIn, CheckOut: checkOut})
	if err != nil {
		t.Fatalf("Optimize 9 khách: %v", err)
	}
	if res.Group {
		t.Error("9 khách phải đi nhánh đề xuất riêng lẻ")
	}
	if res.Solutions != nil && len(res.Solutions) > 0 {
		t.Error("nhánh riêng lẻ không được trả về Solutions")
	}

	// 10 khách: nhánh tổ hợp cho đoàn
	res, err = o.Optimize(context.Background(), Request{Rooms: rooms, Adults: 8, Children: 2, CheckIn: checkIn, CheckOut: checkOut})
	if err != nil {
		t.Fatalf("Optimize 10 khách: %v", err)
	}
	if !res.Group {
		t.Error("10 khách phải đi nhánh tổ hợp")
	}
	if len(res.Recommendations) > 0 {
		t.Error("nhánh tổ hợp không được trả về Recommendations")
	}
	if res.TotalGuests != 10 || res.Nights != 1 {
		t.Errorf("TotalGuests=%d Nights=%d, want 10 và 1", res.TotalGuests, res.Nights)
	}
}

func TestOptimizeGroupSolutions(t *testing.T) {
	o := newTestOptimizer(&fakeChecker{})
	checkIn, checkOut := testDates(t, 1)

	// Một loại phòng duy nhất chứa 1..5 người lớn, giá 100/đêm:
	// 2x5 người = 200, 5x2 người = 500, 10x1 người = 1500 (phụ phí 1.5x)
	rooms := []*models.Room{
		makeRoom(7, constants.RoomTypeFamilySuite, 100, 1, 5, 0, 0),
	}

	res, err := o.Optimize(context.Background(), Request{Rooms: rooms, Adults: 10, CheckIn: checkIn, CheckOut: checkOut})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if len(res.Solutions) != 3 {
		t.Fatalf("got %d phương án, want 3", len(res.Solutions))
	}

	wantCents := []int64{20000, 50000, 150000}
	wantRooms := []int{2, 5, 10}
	for i, sol := range res.Solutions {
		if sol.TotalCents != wantCents[i] {
			t.Errorf("phương án %d: TotalCents=%d, want %d", i, sol.TotalCents, wantCents[i])
		}
		if sol.TotalRooms != wantRooms[i] {
			t.Errorf("phương án %d: TotalRooms=%d, want %d", i, sol.TotalRooms, wantRooms[i])
		}
	}

	if res.Message == "" {
		t.Error("nhánh đoàn phải kèm message")
	}
}

func TestOptimizeGroupNoAvailability(t *testing.T) {
	checker := &fakeChecker{unavailable: map[uint]bool{1: true, 2: true, 3: true}}
	o := newTestOptimizer(checker)
	checkIn, checkOut := testDates(t, 2)

	res, err := o.Optimize(context.Background(), Request{Rooms: groupPool(), Adults: 10, Children: 2, CheckIn: checkIn, CheckOut: checkOut})
	if err != nil {
		t.Fatalf("không còn phòng trống không phải là lỗi: %v", err)
	}
	if len(res.Solutions) != 0 {
		t.Errorf("got %d phương án, want 0", len(res.Solutions))
	}
	if checker.calls != 3 {
		t.Errorf("phải kiểm tra cả 3 phòng, got %d lần gọi", checker.calls)
	}
}

func TestOptimizeAvailabilityErrorPropagates(t *testing.T) {
	oracleErr := errors.New("db down")
	o := newTestOptimizer(&fakeChecker{err: oracleErr})
	checkIn, checkOut := testDates(t, 1)

	_, err := o.Optimize(context.Background(), Request{Rooms: groupPool(), Adults: 10, CheckIn: checkIn, CheckOut: checkOut})
	if err == nil {
		t.Fatal("lỗi oracle phải được truyền lên, không được nuốt")
	}
	if !errors.Is(err, oracleErr) {
		t.Errorf("lỗi gốc phải giữ nguyên trong chain: %v", err)
	}
}

func TestOptimizeIndividualRecommendations(t *testing.T) {
	// Phòng 2 đang bận nhưng vẫn phải xuất hiện trong đề xuất kèm cờ bận
	checker := &fakeChecker{unavailable: map[uint]bool{2: true}}
	o := newTestOptimizer(checker)
	checkIn, checkOut := testDates(t, 2)

	rooms := []*models.Room{
		makeRoom(1, constants.RoomTypeFamilySuite, 120, 1, 4, 0, 2), // hợp, 240 cho 2 đêm
		makeRoom(2, constants.RoomTypeDouble, 80, 1, 2, 0, 1),       // hợp nhưng bận, 160
		makeRoom(3, constants.RoomTypeSingle, 30, 1, 1, 0, 0),       // không chứa nổi 3 khách
	}

	res, err := o.Optimize(context.Background(), Request{Rooms: rooms, Adults: 2, Children: 1, CheckIn: checkIn, CheckOut: checkOut})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if len(res.Recommendations) != 2 {
		t.Fatalf("got %d đề xuất, want 2", len(res.Recommendations))
	}

	// Xếp theo giá mỗi người tăng dần: phòng đôi 160 trước suite 240
	first := res.Recommendations[0]
	if first.Room.RoomId != 2 || first.IsAvailable {
		t.Errorf("đề xuất đầu phải là phòng 2 đang bận, got phòng %d available=%v", first.Room.RoomId, first.IsAvailable)
	}
	if first.TotalCents != 16000 {
		t.Errorf("giá phòng 2 = %d, want 16000", first.TotalCents)
	}

	second := res.Recommendations[1]
	if second.Room.RoomId != 1 || !second.IsAvailable {
		t.Errorf("đề xuất thứ hai phải là phòng 1 còn trống, got phòng %d", second.Room.RoomId)
	}
	if second.TotalCents != 24000 {
		t.Errorf("giá phòng 1 = %d, want 24000", second.TotalCents)
	}
}

func TestOptimizeIndividualSurcharge(t *testing.T) {
	o := newTestOptimizer(&fakeChecker{})
	checkIn, checkOut := testDates(t, 2)

	rooms := []*models.Room{
		makeRoom(1, constants.RoomTypeDouble, 100, 1, 2, 0, 1),
	}

	res, err := o.Optimize(context.Background(), Request{Rooms: rooms, Adults: 1, CheckIn: checkIn, CheckOut: checkOut})
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if len(res.Recommendations) != 1 {
		t.Fatalf("got %d đề xuất, want 1", len(res.Recommendations))
	}
	// 100 * 1.5 * 2 đêm = 300
	if got := res.Recommendations[0].TotalCents; got != 30000 {
		t.Errorf("TotalCents = %d, want 30000", got)
	}
}

func TestOptimizeDeterminism(t *testing.T) {
	o := newTestOptimizer(&fakeChecker{})
	checkIn, checkOut := testDates(t, 2)
	req := Request{Rooms: groupPool(), Adults: 10, Children: 2, CheckIn: checkIn, CheckOut: checkOut}

	first, err := o.Optimize(context.Background(), req)
	if err != nil {
		t.Fatalf("lần 1: %v", err)
	}
	second, err := o.Optimize(context.Background(), req)
	if err != nil {
		t.Fatalf("lần 2: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("cùng input phải cho cùng danh sách phương án đã xếp hạng")
	}
}

func TestNights(t *testing.T) {
	checkIn, _ := time.Parse("02/01/2006", "10/03/2026")

	if got := Nights(checkIn, checkIn.AddDate(0, 0, 2)); got != 2 {
		t.Errorf("2 ngày tròn = %d đêm, want 2", got)
	}
	// Lệch một phần ngày thì làm tròn lên
	if got := Nights(checkIn, checkIn.AddDate(0, 0, 1).Add(6*time.Hour)); got != 2 {
		t.Errorf("1 ngày 6 giờ = %d đêm, want 2", got)
	}
	if got := Nights(checkIn, checkIn); got != 0 {
		t.Errorf("cùng ngày = %d đêm, want 0", got)
	}
}
