package optimizer

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"quickstay/errors"
	"quickstay/models"
	"quickstay/services/logger"
)

// AvailabilityChecker trả lời một phòng có trống trong khoảng ngày hay không.
// Phía sau là truy vấn booking chồng lấn, ở đây chỉ coi là hộp đen.
type AvailabilityChecker interface {
	CheckAvailable(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error)
}

// Optimizer tìm các phương án xếp phòng giá thấp cho một nhóm khách
type Optimizer struct {
	checker AvailabilityChecker
	budget  SearchBudget
	logger  logger.Logger
}

// Options tham số khởi tạo Optimizer
type Options struct {
	Checker AvailabilityChecker
	Budget  SearchBudget
	Logger  logger.Logger
}

// New tạo instance mới của Optimizer
func New(opts Options) *Optimizer {
	if opts.Budget == (SearchBudget{}) {
		opts.Budget = DefaultBudget()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &Optimizer{
		checker: opts.Checker,
		budget:  opts.Budget,
		logger:  opts.Logger,
	}
}

// Request một yêu cầu tối ưu: pool phòng đã lọc sẵn và thông tin nhóm khách
type Request struct {
	Rooms    []*models.Room
	Adults   int
	Children int
	CheckIn  time.Time
	CheckOut time.Time
}

// Result kết quả trả về cho caller. Nhóm lớn nhận Solutions, nhóm nhỏ nhận
// Recommendations; hai slice không bao giờ cùng có dữ liệu.
type Result struct {
	Group           bool
	Solutions       []Solution
	Recommendations []Recommendation
	TotalGuests     int
	Nights          int
	Message         string
}

// availabilityResult kết quả kiểm tra phòng trống cho một phòng
type availabilityResult struct {
	available bool
	err       error
}

// checkAllAvailability kiểm tra phòng trống cho cả pool song song, chờ xong
// toàn bộ mới trả về. Kết quả giữ nguyên thứ tự pool để output ổn định.
// Một phòng lỗi thì cả lần gọi lỗi, không được âm thầm coi là trống hay bận.
func (o *Optimizer) checkAllAvailability(ctx context.Context, rooms []*models.Room, checkIn, checkOut time.Time) ([]bool, error) {
	results := make([]availabilityResult, len(rooms))
	var wg sync.WaitGroup

	for i, room := range rooms {
		wg.Add(1)
		go func(i int, room *models.Room) {
			defer wg.Done()
			ok, err := o.checker.CheckAvailable(ctx, room.RoomId, checkIn, checkOut)
			results[i] = availabilityResult{available: ok, err: err}
		}(i, room)
	}
	wg.Wait()

	flags := make([]bool, len(rooms))
	for i, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("kiểm tra phòng trống cho phòng %d thất bại: %w", rooms[i].RoomId, res.err)
		}
		flags[i] = res.available
	}
	return flags, nil
}

// Optimize điểm vào duy nhất của optimizer. Nhóm từ GroupThreshold khách trở
// lên chạy tìm kiếm tổ hợp trên toàn bộ phòng trống; nhóm nhỏ chỉ lọc các
// phòng chứa vừa cả nhóm và xếp theo giá mỗi người.
func (o *Optimizer) Optimize(ctx context.Context, req Request) (*Result, error) {
	if req.Adults < 1 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidGuests, "Ít nhất cần có 1 người lớn", nil)
	}
	if req.Children < 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidGuests, "Số trẻ em không hợp lệ", nil)
	}

	nights := Nights(req.CheckIn, req.CheckOut)
	if nights < 1 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	party := Party{Adults: req.Adults, Children: req.Children, Nights: nights}

	if party.TotalGuests() >= GroupThreshold {
		return o.optimizeGroup(ctx, req, party)
	}
	return o.recommendIndividual(ctx, req, party)
}

// optimizeGroup nhánh đoàn lớn: lọc phòng trống rồi chạy tìm kiếm tổ hợp
func (o *Optimizer) optimizeGroup(ctx context.Context, req Request, party Party) (*Result, error) {
	result := &Result{
		Group:       true,
		Solutions:   []Solution{},
		TotalGuests: party.TotalGuests(),
		Nights:      party.Nights,
	}

	if len(req.Rooms) == 0 {
		result.Message = fmt.Sprintf("Found 0 optimal room combination(s) for %d guests", party.TotalGuests())
		return result, nil
	}

	flags, err := o.checkAllAvailability(ctx, req.Rooms, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	available := make([]*models.Room, 0, len(req.Rooms))
	for i, room := range req.Rooms {
		if flags[i] {
			available = append(available, room)
		}
	}

	combos := GenerateCombinations(ctx, available, party.Adults, party.Children, o.budget)
	o.logger.Debug("Tìm được %d tổ hợp thô cho %d khách", len(combos), party.TotalGuests())

	solutions := make([]Solution, 0, len(combos))
	for _, combo := range combos {
		solutions = append(solutions, PriceCombination(combo, party.Nights))
	}

	result.Solutions = RankSolutions(solutions, o.budget.MaxCombinations)
	result.Message = fmt.Sprintf("Found %d optimal room combination(s) for %d guests", len(result.Solutions), party.TotalGuests())
	return result, nil
}

// recommendIndividual nhánh nhóm nhỏ: mỗi đề xuất là một phòng duy nhất chứa
// vừa cả nhóm, kèm cờ phòng trống, xếp theo giá mỗi người tăng dần
func (o *Optimizer) recommendIndividual(ctx context.Context, req Request, party Party) (*Result, error) {
	result := &Result{
		Recommendations: []Recommendation{},
		TotalGuests:     party.TotalGuests(),
		Nights:          party.Nights,
	}

	suitable := make([]*models.Room, 0, len(req.Rooms))
	for _, room := range req.Rooms {
		if room.MaxCapacity() < party.TotalGuests() {
			continue
		}
		if party.Adults < room.MinAdults || party.Adults > room.MaxAdults {
			continue
		}
		if party.Children < room.MinChildren || party.Children > room.MaxChildren {
			continue
		}
		suitable = append(suitable, room)
	}

	if len(suitable) == 0 {
		return result, nil
	}

	flags, err := o.checkAllAvailability(ctx, suitable, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	for i, room := range suitable {
		result.Recommendations = append(result.Recommendations, Recommendation{
			Room:        room,
			IsAvailable: flags[i],
			TotalCents:  PriceCents(room, party.Adults, party.Children, party.Nights),
			Nights:      party.Nights,
			Adults:      party.Adults,
			Children:    party.Children,
		})
	}

	// Cùng mẫu số totalGuests nên xếp theo tổng giá là đủ
	sort.SliceStable(result.Recommendations, func(i, j int) bool {
		return result.Recommendations[i].TotalCents < result.Recommendations[j].TotalCents
	})

	return result, nil
}
