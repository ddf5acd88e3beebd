package ingesting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"Date,Ad Name,Spend (Cost, Amount Spent)",
		"2024-01-01,AD01,100",
		"", // linha em branco deve ser ignorada
		"2024-01-02,AD02,50",
	}, "\n")

	// O cabeçalho contém vírgula dentro do nome da coluna, então precisa
	// vir entre aspas para o parser de CSV.
	input = strings.Replace(input, "Spend (Cost, Amount Spent)", `"Spend (Cost, Amount Spent)"`, 1)

	rows, err := ReadCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01-01", rows[0]["Date"])
	assert.Equal(t, "AD01", rows[0]["Ad Name"])
	assert.Equal(t, "100", rows[0]["Spend (Cost, Amount Spent)"])
	assert.Equal(t, "AD02", rows[1]["Ad Name"])
}

func TestReadCSV_LinhasIrregulares(t *testing.T) {
	input := "Date,Ad Name,Impressions\n" +
		"2024-01-01,AD01\n" + // linha curta: coluna faltante vira vazio
		"2024-01-02,AD02,10,extra\n" // linha longa: excedente é descartado

	rows, err := ReadCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[0]["Impressions"])
	assert.Equal(t, "10", rows[1]["Impressions"])
}

func TestReadCSV_ArquivoVazio(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))

	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadCSV_SomenteCabecalho(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("Date,Ad Name\n"))

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Date", "Ad Name", "Impressions"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"2024-01-01", "AD01", 1000}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"", "", ""}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"2024-01-02", "AD02", 500}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadXLSX(buf)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "AD01", rows[0]["Ad Name"])
	assert.Equal(t, "1000", rows[0]["Impressions"])
	assert.Equal(t, "2024-01-02", rows[1]["Date"])
}

func TestReadXLSX_ArquivoInvalido(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("isto não é um xlsx"))

	assert.Error(t, err)
}

func TestReadFile_EscolhePorExtensao(t *testing.T) {
	// Conteúdo CSV com nome .xlsx deve falhar: a escolha é pelo sufixo do
	// nome, nunca pelo conteúdo.
	_, err := ReadFile("export.xlsx", strings.NewReader("Date,Ad Name\n2024-01-01,AD01\n"))
	assert.Error(t, err)

	rows, err := ReadFile("export.CSV", strings.NewReader("Date,Ad Name\n2024-01-01,AD01\n"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
