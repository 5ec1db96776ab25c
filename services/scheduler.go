package services

import (
	"log"
	"restropos-backend/realtime"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartSchedulers wires the background jobs: the low-stock digest every
// morning and the automatic day-end archival just before midnight.
func StartSchedulers(db *gorm.DB, publisher realtime.Publisher) *cron.Cron {
	alerts := NewStockAlertService(db)
	dayEnd := NewDayEndService(db)

	c := cron.New()

	c.AddFunc("0 9 * * *", alerts.SendDailyAlerts)
	c.AddFunc("55 23 * * *", func() {
		dayEnd.RunForAllRestaurants(publisher)
	})

	c.Start()
	log.Println("Background schedulers started")
	return c
}
