package helper

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/redis/go-redis/v9"

	"metroll_cms/client"
	"metroll_cms/config"
	"metroll_cms/model"
)

// StatsCollector aggregates the dashboard snapshot. Implemented by the
// statistic handler, injected here to avoid an import cycle.
type StatsCollector func(ctx context.Context) (model.DashboardStats, error)

// DashboardRefresher periodically collects dashboard stats with a service
// credential and publishes them on a redis channel for websocket fan-out.
type DashboardRefresher struct {
	Redis   *redis.Client
	Collect StatsCollector
	Channel string

	scheduler gocron.Scheduler
}

func (r *DashboardRefresher) refresh() {
	log.Println("[CRON] dashboard refresh triggered")

	// Background jobs have no user session, so they run with the
	// service credential.
	sess := &model.Session{
		ID:            "service",
		Role:          model.RoleAdmin,
		UpstreamToken: config.Config("SERVICE_TOKEN"),
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = client.WithSession(ctx, sess)

	stats, err := r.Collect(ctx)
	if err != nil {
		log.Printf("dashboard refresh failed: %v", err)
		return
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		log.Printf("dashboard marshal failed: %v", err)
		return
	}
	if err := r.Redis.Publish(ctx, r.Channel, payload).Err(); err != nil {
		log.Printf("dashboard publish failed: %v", err)
	}
}

// Start schedules the periodic refresh. The interval comes from
// DASHBOARD_REFRESH_MINUTES and defaults to five minutes.
func (r *DashboardRefresher) Start() error {
	minutes, err := strconv.Atoi(config.ConfigOr("DASHBOARD_REFRESH_MINUTES", "5"))
	if err != nil || minutes <= 0 {
		minutes = 5
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	r.scheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(time.Duration(minutes)*time.Minute),
		gocron.NewTask(r.refresh),
	)
	if err != nil {
		return err
	}

	s.Start()
	log.Printf("dashboard refresher started (every %d minutes)", minutes)
	return nil
}

func (r *DashboardRefresher) Stop() {
	if r.scheduler != nil {
		_ = r.scheduler.Shutdown()
	}
}
