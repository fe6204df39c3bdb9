package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anjiri1684/trivia_api/services"
	"github.com/robfig/cron/v3"
)

const statsTimeout = 30 * time.Second

type statsSource interface {
	Stats(ctx context.Context) (services.StoreStats, error)
}

// ReportStoreStats logs how many questions and categories are stored.
func ReportStoreStats(source statsSource) {
	log.Println("Running job: ReportStoreStats...")

	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()

	stats, err := source.Stats(ctx)
	if err != nil {
		log.Printf("Error collecting store stats: %v", err)
		return
	}

	log.Printf("Store holds %d question(s) across %d categor(ies).", stats.Questions, stats.Categories)
}

// Schedule registers the stats job on c. An empty spec leaves c untouched.
func Schedule(c *cron.Cron, spec string, source statsSource) error {
	if spec == "" {
		log.Println("STATS_SCHEDULE is empty, stats job disabled")
		return nil
	}
	if _, err := c.AddFunc(spec, func() { ReportStoreStats(source) }); err != nil {
		return fmt.Errorf("schedule stats job %q: %w", spec, err)
	}
	return nil
}
