// Package ingesting lê exports de performance de anúncios (CSV ou XLSX) e os
// normaliza para a forma canônica AdRecord.
package ingesting

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// RawRow é uma linha bruta do export, indexada pelo cabeçalho da coluna.
type RawRow map[string]string

// ErrEmptyFile indica um arquivo sem linha de cabeçalho. Distinto de um
// arquivo válido com zero linhas de dados, que produz um slice vazio sem erro.
var ErrEmptyFile = errors.New("arquivo sem linha de cabeçalho")

// ReadFile escolhe o leitor pelo sufixo do nome do arquivo. Qualquer falha de
// parse é um erro de formato de ingestão: nada parcial é devolvido.
func ReadFile(name string, r io.Reader) ([]RawRow, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return ReadXLSX(r)
	default:
		return ReadCSV(r)
	}
}

// ReadCSV lê um CSV com cabeçalho e devolve as linhas indexadas por coluna.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports reais vêm com linhas irregulares

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler cabeçalho do CSV")
	}

	rows := make([]RawRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "falha ao ler linha do CSV")
		}

		if isBlank(record) {
			continue
		}

		rows = append(rows, zipRow(header, record))
	}

	return rows, nil
}

// ReadXLSX lê a primeira planilha de um arquivo Excel, tratando a primeira
// linha como cabeçalho.
func ReadXLSX(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao abrir arquivo XLSX")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	allRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler planilha")
	}

	if len(allRows) == 0 {
		return nil, ErrEmptyFile
	}

	header := allRows[0]
	rows := make([]RawRow, 0, len(allRows)-1)
	for _, record := range allRows[1:] {
		if isBlank(record) {
			continue
		}
		rows = append(rows, zipRow(header, record))
	}

	return rows, nil
}

func zipRow(header, record []string) RawRow {
	row := make(RawRow, len(header))
	for i, key := range header {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if i < len(record) {
			row[key] = record[i]
		} else {
			row[key] = ""
		}
	}
	return row
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
