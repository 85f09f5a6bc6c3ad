// Package analytics keeps banner impression and click counters in Redis.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	EventImpression = "impressions"
	EventClick      = "clicks"

	dayLayout = "2006-01-02"

	// MaxStatsDays limits a single stats query.
	MaxStatsDays = 366
)

var ErrInvalidRange = errors.New("invalid date range")

// DayStats is one day of banner counters.
type DayStats struct {
	Date        string `json:"date"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

// BannerStats sums the per-day counters of one banner.
type BannerStats struct {
	BannerID    int        `json:"bannerId"`
	Impressions int64      `json:"impressions"`
	Clicks      int64      `json:"clicks"`
	Days        []DayStats `json:"days"`
}

// NewRedisClient connects to redisURL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

// BannerCounter stores one hash per banner with a field per day and event.
type BannerCounter struct {
	client redis.Cmdable
	prefix string
}

func NewBannerCounter(client redis.Cmdable) *BannerCounter {
	return &BannerCounter{
		client: client,
		prefix: "newsroom:banner:",
	}
}

func (c *BannerCounter) key(bannerID int) string {
	return c.prefix + strconv.Itoa(bannerID)
}

func field(day time.Time, event string) string {
	return day.UTC().Format(dayLayout) + ":" + event
}

// Track increments the event counter of the banner for the day of at.
func (c *BannerCounter) Track(ctx context.Context, bannerID int, event string, at time.Time) error {
	if event != EventImpression && event != EventClick {
		return fmt.Errorf("unknown banner event %q", event)
	}

	if err := c.client.HIncrBy(ctx, c.key(bannerID), field(at, event), 1).Err(); err != nil {
		return fmt.Errorf("track banner %s: %w", event, err)
	}

	return nil
}

// Stats returns the counters of every day in [from, to], both days inclusive.
func (c *BannerCounter) Stats(ctx context.Context, bannerID int, from, to time.Time) (*BannerStats, error) {
	from = truncateDay(from)
	to = truncateDay(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s is before %s", ErrInvalidRange, to.Format(dayLayout), from.Format(dayLayout))
	}

	days := int(to.Sub(from).Hours()/24) + 1
	if days > MaxStatsDays {
		return nil, fmt.Errorf("%w: at most %d days", ErrInvalidRange, MaxStatsDays)
	}

	fields := make([]string, 0, days*2)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		fields = append(fields, field(day, EventImpression), field(day, EventClick))
	}

	values, err := c.client.HMGet(ctx, c.key(bannerID), fields...).Result()
	if err != nil {
		return nil, fmt.Errorf("get banner stats: %w", err)
	}

	stats := &BannerStats{BannerID: bannerID, Days: make([]DayStats, days)}
	for i := 0; i < days; i++ {
		d := DayStats{
			Date:        from.AddDate(0, 0, i).Format(dayLayout),
			Impressions: toInt64(values[i*2]),
			Clicks:      toInt64(values[i*2+1]),
		}
		stats.Days[i] = d
		stats.Impressions += d.Impressions
		stats.Clicks += d.Clicks
	}

	return stats, nil
}

// Reset drops every counter of the banner.
func (c *BannerCounter) Reset(ctx context.Context, bannerID int) error {
	if err := c.client.Del(ctx, c.key(bannerID)).Err(); err != nil {
		return fmt.Errorf("reset banner stats: %w", err)
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toInt64(v interface{}) int64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
