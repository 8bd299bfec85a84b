package jobs

import (
	"context"
	"log/slog"

	"github.com/jasonlvhit/gocron"

	portssvc "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/services"
)

// BackupJob runs the daily database export and mail-out.
type BackupJob struct {
	backupService portssvc.BackupSvcFacade
	at            string
	logger        *slog.Logger
}

// NewBackupJob creates the daily backup job. at is a "HH:MM" wall
// clock time.
func NewBackupJob(bs portssvc.BackupSvcFacade, at string, logger *slog.Logger) *BackupJob {
	return &BackupJob{backupService: bs, at: at, logger: logger}
}

// Start schedules the job and blocks on the scheduler loop. Run it in
// its own goroutine. A failed run is logged and the schedule keeps
// going.
func (j *BackupJob) Start() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At(j.at).Do(j.run)
	<-s.Start()
}

func (j *BackupJob) run() {
	j.logger.Info("Starting scheduled backup")
	if err := j.backupService.RunBackup(context.Background()); err != nil {
		j.logger.Error("Scheduled backup failed", slog.String("error", err.Error()))
		return
	}
	j.logger.Info("Scheduled backup sent")
}
