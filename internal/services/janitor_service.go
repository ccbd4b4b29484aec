package services

import (
	"Packed/internal/config"
	"Packed/internal/repository"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor permanently removes records that have been soft-deleted for longer
// than the configured retention window: whole lists with everything in them,
// but also items, containers and placements deleted out of lists that are
// still alive.
type Janitor struct {
	listRepo      repository.ListRepository
	itemRepo      repository.ItemRepository
	containerRepo repository.ContainerRepository
	placementRepo repository.PlacementRepository
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	listRepo repository.ListRepository,
	itemRepo repository.ItemRepository,
	containerRepo repository.ContainerRepository,
	placementRepo repository.PlacementRepository,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		listRepo:      listRepo,
		itemRepo:      itemRepo,
		containerRepo: containerRepo,
		placementRepo: placementRepo,
		logService:    logService,
		cleaning:      false,
		mutex:         sync.Mutex{},
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.purgeDeleted(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	j.logService.Log.Debug("starting purge job")
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	if cronSchedule == "" {
		return
	}
	_, err := j.cron.AddFunc(cronSchedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.purgeDeleted(false)
	})

	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "purge",
			"error": err.Error(),
		}).Error("Failed to schedule purge job")
		return
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.cron.Stop()
	j.cleaning = false
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "purge",
		"status": "stopped",
	}).Info("Janitor purge stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) purgeDeleted(forced bool) {
	retention := time.Duration(j.configuration.Server.CleanConfig.RetentionDays) * 24 * time.Hour
	if forced {
		retention = 0
	}
	cutoff := time.Now().Add(-retention)

	lists, err := j.listRepo.FindDeletedBefore(cutoff)
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "purge",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to find soft-deleted lists")
		return
	}
	j.logService.Log.WithFields(logrus.Fields{
		"job":   "purge",
		"count": len(lists),
	}).Debug("found soft-deleted lists")

	for i := range lists {
		if err := j.listRepo.HardDelete(&lists[i]); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":     "purge",
				"list_id": lists[i].ID,
				"error":   err.Error(),
			}).Error("Failed to purge list")
		}
	}

	// Children deleted out of still-live lists are never reached through a
	// list purge, so each table gets its own sweep.
	j.purgeTable("placements", j.placementRepo.PurgeDeletedBefore, cutoff)
	j.purgeTable("items", j.itemRepo.PurgeDeletedBefore, cutoff)
	j.purgeTable("containers", j.containerRepo.PurgeDeletedBefore, cutoff)
}

func (j *Janitor) purgeTable(table string, purge func(time.Time) error, cutoff time.Time) {
	if err := purge(cutoff); err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "purge",
			"table": table,
			"error": err.Error(),
		}).Error("Failed to purge soft-deleted records")
	}
}
