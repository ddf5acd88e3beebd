// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/metacore/ads-performance-api/infrastructure/database/postgres"
	"github.com/metacore/ads-performance-api/internal/domain"
	"github.com/metacore/ads-performance-api/pkg/utils"
)

const (
	datasetsTable = "ad_datasets ds"

	// DatasetKey é a chave fixa sob a qual a coleção canônica é persistida.
	DatasetKey = "metacore_ads_data"
)

// DatasetRepository persiste a coleção canônica de registros como um
// snapshot versionado sob uma chave fixa: cada upload substitui o conjunto
// inteiro, o reset apaga tudo, e a restauração devolve a versão mais recente.
type DatasetRepository interface {
	// Replace grava um novo snapshot com a coleção completa, substituindo o
	// dataset corrente de forma atômica do ponto de vista dos leitores.
	Replace(records []domain.AdRecord) error

	// Get restaura a versão mais recente. Snapshot ausente, malformado ou
	// vazio resulta em estado vazio, sem erro.
	Get() ([]domain.AdRecord, error)

	// Delete remove todos os snapshots da chave (reset explícito).
	Delete() error

	// PruneOldVersions apaga versões substituídas, mantendo as keep mais
	// recentes. Devolve quantas linhas foram removidas.
	PruneOldVersions(keep int) (int64, error)
}

type datasetRepository struct {
	conn postgres.Queryer
}

func NewDatasetRepository(conn postgres.Queryer) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

func (r *datasetRepository) Replace(records []domain.AdRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("erro ao serializar dataset para JSON: %w", err)
	}

	version, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID da versão do dataset: %w", err)
	}

	query, args, err := squirrel.
		Insert("ad_datasets").
		Columns("version", "dataset_key", "records", "record_count", "created_at").
		Values(version, DatasetKey, payload, len(records), time.Now()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar snapshot do dataset: %w", err)
	}

	return nil
}

func (r *datasetRepository) Get() ([]domain.AdRecord, error) {
	query, args, err := squirrel.
		Select("ds.records").
		From(datasetsTable).
		Where(squirrel.Eq{"ds.dataset_key": DatasetKey}).
		OrderBy("ds.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	if err := r.conn.QueryRow(query, args...).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return []domain.AdRecord{}, nil
		}
		return nil, fmt.Errorf("erro ao ler snapshot do dataset: %w", err)
	}

	// Snapshot malformado ou que não é um array não vazio vira estado vazio:
	// um snapshot ruim nunca derruba a aplicação.
	var records []domain.AdRecord
	if err := json.Unmarshal(payload, &records); err != nil || len(records) == 0 {
		return []domain.AdRecord{}, nil
	}

	return records, nil
}

func (r *datasetRepository) Delete() error {
	query, args, err := squirrel.
		Delete("ad_datasets").
		Where(squirrel.Eq{"dataset_key": DatasetKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao apagar dataset: %w", err)
	}

	return nil
}

func (r *datasetRepository) PruneOldVersions(keep int) (int64, error) {
	if keep < 1 {
		keep = 1
	}

	// squirrel não constrói subqueries de DELETE com offset; SQL direto aqui.
	query := `
		DELETE FROM ad_datasets
		WHERE dataset_key = $1
		  AND version NOT IN (
			SELECT version FROM ad_datasets
			WHERE dataset_key = $1
			ORDER BY created_at DESC
			LIMIT $2
		  )`

	result, err := r.conn.Exec(query, DatasetKey, keep)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover versões antigas do dataset: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao contar versões removidas: %w", err)
	}

	return removed, nil
}
