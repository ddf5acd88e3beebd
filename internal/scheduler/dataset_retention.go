// Package scheduler contém os serviços de agendamento da aplicação.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/metacore/ads-performance-api/internal/config"
	"github.com/sirupsen/logrus"
)

// VersionPruner é o recorte do repositório de datasets usado pela rotina de
// retenção.
type VersionPruner interface {
	PruneOldVersions(keep int) (int64, error)
}

type DatasetRetentionConfig struct {
	CronSchedule string
	KeepVersions int
	Enabled      bool
}

// DatasetRetentionService apaga periodicamente versões antigas do snapshot
// do dataset, mantendo apenas as N mais recentes.
type DatasetRetentionService struct {
	scheduler          *gocron.Scheduler
	datasetRepo        VersionPruner
	config             DatasetRetentionConfig
	pruneRunning       bool
	pruneMutex         sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRemovedCount   int64
}

func NewDatasetRetentionService(datasetRepo VersionPruner, cfg *config.Config) *DatasetRetentionService {
	retentionConfig := DatasetRetentionConfig{
		CronSchedule: cfg.SnapshotRetention.CronSchedule,
		KeepVersions: cfg.SnapshotRetention.KeepVersions,
		Enabled:      cfg.SnapshotRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"keep_versions": retentionConfig.KeepVersions,
	}).Info("Configuração da retenção de snapshots carregada")

	return &DatasetRetentionService{
		scheduler:   gocron.NewScheduler(time.Local),
		datasetRepo: datasetRepo,
		config:      retentionConfig,
	}
}

func (s *DatasetRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de retenção de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de retenção de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.PruneSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na retenção de snapshots")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de retenção de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// PruneSnapshots executa uma rodada de retenção. Execuções concorrentes são
// serializadas: uma rodada já em andamento faz a chamada retornar sem agir.
func (s *DatasetRetentionService) PruneSnapshots() error {
	s.pruneMutex.Lock()
	defer s.pruneMutex.Unlock()

	if s.pruneRunning {
		logrus.Warn("Retenção de snapshots já está em execução")
		return nil
	}

	s.pruneRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.pruneRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando retenção de snapshots do dataset")

	removed, err := s.datasetRepo.PruneOldVersions(s.config.KeepVersions)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover versões antigas do dataset")
		return err
	}

	s.lastRemovedCount = removed

	logrus.WithFields(logrus.Fields{
		"removed_versions": removed,
		"keep_versions":    s.config.KeepVersions,
	}).Info("Retenção de snapshots concluída")

	return nil
}

// TriggerManualPrune inicia manualmente uma rodada de retenção
func (s *DatasetRetentionService) TriggerManualPrune() {
	s.pruneMutex.Lock()
	if s.pruneRunning {
		s.pruneMutex.Unlock()
		logrus.Info("Retenção de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.pruneMutex.Unlock()

	logrus.Info("Iniciando retenção manual de snapshots")
	go s.PruneSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRetentionService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"keep_versions":         s.config.KeepVersions,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_removed_versions": s.lastRemovedCount,
	}
}
