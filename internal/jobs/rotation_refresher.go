package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"ohrid/internal/services"
)

// RotationRefresher recomputes the cached venue listing on a cron schedule so the
// order follows the time buckets without waiting for a request.
type RotationRefresher struct {
	cron   *cron.Cron
	venues services.VenueServiceInterface
	logger *zap.Logger
	loc    *time.Location
}

func NewRotationRefresher(spec string, venues services.VenueServiceInterface, loc *time.Location, logger *zap.Logger) (*RotationRefresher, error) {
	r := &RotationRefresher{
		cron:   cron.New(cron.WithLocation(loc)),
		venues: venues,
		logger: logger,
		loc:    loc,
	}
	if _, err := r.cron.AddFunc(spec, r.Run); err != nil {
		return nil, fmt.Errorf("invalid rotation schedule %q: %w", spec, err)
	}
	return r, nil
}

// Run refreshes once.
func (r *RotationRefresher) Run() {
	listing := r.venues.Refresh(time.Now().In(r.loc))
	r.logger.Debug("venue rotation refreshed",
		zap.String("bucket", string(listing.Bucket)),
		zap.Bool("weekend", listing.Weekend),
		zap.Int("groups", len(listing.Groups)))
}

func (r *RotationRefresher) Start() {
	r.Run()
	r.cron.Start()
}

// Stop waits for a running refresh to finish.
func (r *RotationRefresher) Stop() {
	<-r.cron.Stop().Done()
}
