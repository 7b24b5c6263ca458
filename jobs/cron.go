package jobs

import (
	"context"
	"log"

	"quickstay/controllers"
	"quickstay/services"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) error {
	// Chạy lúc 0h mỗi ngày: đóng các booking đã qua ngày trả phòng
	_, err := c.AddFunc("0 0 * * *", func() {
		updated, err := controllers.MarkCompletedBookings(db)
		if err != nil {
			log.Printf("Lỗi khi cập nhật trạng thái booking: %v", err)
			return
		}

		if updated > 0 {
			log.Printf("Đã chuyển %d booking sang trạng thái hoàn thành", updated)

			if m != nil {
				if msg, err := json.Marshal(map[string]interface{}{
					"event":   "booking:completed",
					"updated": updated,
				}); err == nil {
					m.Broadcast(msg)
				}
			}
		}
	})
	if err != nil {
		return err
	}

	// Mỗi 10 phút làm mới cache danh sách phòng
	_, err = c.AddFunc("*/10 * * * *", func() {
		if err := services.DeleteFromRedis(context.Background(), redisCli, "rooms:all"); err != nil {
			log.Printf("Lỗi khi xoá cache danh sách phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
