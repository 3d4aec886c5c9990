package cron

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"frontdesk/config"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAudioPrune = "audio:prune"

// InitAudioPruneWorker runs the async worker and scheduler in the background.
// The hourly prune task deletes synthesized reply audio past its retention
// window, plus any orphaned upload temp files left behind by a crashed
// request.
func InitAudioPruneWorker(audioDir string, retention time.Duration, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAudioPrune, handleAudioPruneTask(audioDir, retention, logger))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeAudioPrune, nil)); err != nil {
		logger.Error("failed to register audio prune schedule", zap.Error(err))
		return
	}

	go func() {
		logger.Info("starting audio prune scheduler")
		if err := scheduler.Run(); err != nil {
			logger.Error("audio prune scheduler stopped", zap.Error(err))
		}
	}()

	// Start the async worker with retry logic.
	go func() {
		logger.Info("starting audio prune worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("audio prune worker failed to start",
					zap.Int("attempt", attempts),
					zap.Error(err))

				if attempts == maxAttempts {
					logger.Error("audio prune worker giving up")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAudioPruneTask(audioDir string, retention time.Duration, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		cutoff := time.Now().Add(-retention)
		pruned := pruneDir(audioDir, "response_", cutoff, logger)

		// Upload temp files are request-scoped; anything older than an hour
		// survived a crash and will never be cleaned up by its request.
		uploadCutoff := time.Now().Add(-time.Hour)
		pruned += pruneDir(os.TempDir(), "kiosk-upload-", uploadCutoff, logger)

		if pruned > 0 {
			logger.Info("pruned audio artifacts", zap.Int("count", pruned))
		}
		return nil
	}
}

func pruneDir(dir, prefix string, cutoff time.Time, logger *zap.Logger) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("audio prune: read dir failed", zap.String("dir", dir), zap.Error(err))
		return 0
	}

	pruned := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			logger.Warn("audio prune: remove failed", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		pruned++
	}
	return pruned
}
