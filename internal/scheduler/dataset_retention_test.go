package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/metacore/ads-performance-api/infrastructure/repository/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDatasetRetentionService_PruneSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDatasetRepository(ctrl)
	mockRepo.EXPECT().
		PruneOldVersions(3).
		Return(int64(2), nil)

	service := &DatasetRetentionService{
		datasetRepo: mockRepo,
		config: DatasetRetentionConfig{
			KeepVersions: 3,
			Enabled:      true,
		},
	}

	err := service.PruneSnapshots()

	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, int64(2), status["last_removed_versions"])
	assert.False(t, status["last_run_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_run_completed_at"].(time.Time).IsZero())
}

func TestDatasetRetentionService_PruneSnapshots_ErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDatasetRepository(ctrl)
	mockRepo.EXPECT().
		PruneOldVersions(5).
		Return(int64(0), errors.New("conexão recusada"))

	service := &DatasetRetentionService{
		datasetRepo: mockRepo,
		config: DatasetRetentionConfig{
			KeepVersions: 5,
			Enabled:      true,
		},
	}

	err := service.PruneSnapshots()

	assert.Error(t, err)
	assert.Equal(t, int64(0), service.GetStatus()["last_removed_versions"])
}

func TestDatasetRetentionService_StartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Desabilitado: nenhuma chamada ao repositório deve acontecer.
	mockRepo := mocks.NewMockDatasetRepository(ctrl)

	service := &DatasetRetentionService{
		datasetRepo: mockRepo,
		config: DatasetRetentionConfig{
			CronSchedule: "0 5 * * *",
			Enabled:      false,
		},
	}

	err := service.Start(context.Background())

	assert.NoError(t, err)
}
