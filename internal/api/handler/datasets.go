package handler

import (
	"net/http"

	"github.com/metacore/ads-performance-api/internal/config"
	"github.com/metacore/ads-performance-api/internal/domain"
	"github.com/metacore/ads-performance-api/internal/ingesting"
	"github.com/metacore/ads-performance-api/pkg/apiErrors"
	"github.com/metacore/ads-performance-api/pkg/metrics"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DatasetReplacer é o recorte do repositório de datasets usado pelos
// handlers de upload e reset.
type DatasetReplacer interface {
	Replace(records []domain.AdRecord) error
	Delete() error
}

// UploadResponse devolve o relatório de ingestão do upload recém-processado.
type UploadResponse struct {
	Report      *domain.IngestionReport `json:"report"`
	RecordCount int                     `json:"record_count"`
}

// UploadDataset recebe um export (CSV ou XLSX) via multipart, normaliza as
// linhas e substitui o dataset corrente pelo resultado. Upload novo sempre
// substitui o anterior por inteiro.
func UploadDataset(m *metrics.Metrics, cfg *config.Config, repo DatasetReplacer) http.HandlerFunc {
	maxBytes := cfg.Upload.MaxSizeMB * 1024 * 1024

	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		if err := r.ParseMultipartForm(maxBytes); err != nil {
			m.RecordIngestion("error", 0, 0)
			apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo excede o tamanho máximo permitido", map[string]any{
				"max_size_mb": cfg.Upload.MaxSizeMB,
			})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			m.RecordIngestion("error", 0, 0)
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' ausente na requisição", nil)
			return
		}
		defer file.Close()

		rows, err := ingesting.ReadFile(header.Filename, file)
		if err != nil {
			logrus.WithError(err).WithField("filename", header.Filename).Warn("Falha ao interpretar arquivo de export")
			m.RecordIngestion("error", 0, 0)

			if errors.Is(err, ingesting.ErrEmptyFile) {
				apiErrors.WriteError(w, apiErrors.ErrUnparsableFile, "Arquivo sem linha de cabeçalho", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrUnparsableFile, "Arquivo do export não pôde ser interpretado", nil)
			return
		}

		records, report := ingesting.Normalize(rows)

		if err := repo.Replace(records); err != nil {
			logrus.WithError(err).Error("Erro ao gravar dataset")
			m.RecordIngestion("error", 0, 0)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar dataset", nil)
			return
		}

		m.RecordIngestion("success", report.ValidRows, report.DroppedRows())

		logrus.WithFields(logrus.Fields{
			"filename":   header.Filename,
			"total_rows": report.TotalRows,
			"valid_rows": report.ValidRows,
		}).Info("Dataset substituído com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadResponse{
			Report:      report,
			RecordCount: len(records),
		})
	}
}

// ResetDataset apaga o dataset corrente por completo.
func ResetDataset(repo DatasetReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := repo.Delete(); err != nil {
			logrus.WithError(err).Error("Erro ao apagar dataset")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao apagar dataset", nil)
			return
		}

		logrus.Info("Dataset apagado")
		w.WriteHeader(http.StatusNoContent)
	}
}
