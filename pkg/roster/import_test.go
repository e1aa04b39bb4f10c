// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roster

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeText(t *testing.T, name, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func writeSpreadsheet(t *testing.T, rows [][]any) string {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()

	for i, row := range rows {
		for j, value := range row {
			if value == nil {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, book.SetCellValue("Sheet1", cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, book.SaveAs(path))
	return path
}

func writeDocument(t *testing.T, paragraphs ...string) string {
	t.Helper()

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, paragraph := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">` + paragraph + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	path := filepath.Join(t.TempDir(), "roster.docx")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	archive := zip.NewWriter(file)
	entry, err := archive.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte(body.String()))
	require.NoError(t, err)
	require.NoError(t, archive.Close())

	return path
}

// writePDF writes a one page PDF document which draws the given content
// stream in Helvetica.
func writePDF(t *testing.T, content string) string {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var document strings.Builder
	document.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, object := range objects {
		offsets[i] = document.Len()
		fmt.Fprintf(&document, "%d 0 obj\n%s\nendobj\n", i+1, object)
	}

	xref := document.Len()
	fmt.Fprintf(&document, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, offset := range offsets {
		fmt.Fprintf(&document, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(&document, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return writeText(t, "roster.pdf", document.String())
}

func TestLines(t *testing.T) {
	assert.Equal(t,
		[]string{"Ana", "Bruno Lima", "Carla"},
		Lines("Ana\r\n  Bruno Lima \n\n\t\nCarla\n"),
	)
	assert.Empty(t, Lines(" \n \r\n"))
}

func TestImportText(t *testing.T) {
	path := writeText(t, "roster.TXT", "Ana\r\nBruno\n\n  Carla  \n")

	names, err := Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, names)
}

func TestImportSpreadsheet(t *testing.T) {
	path := writeSpreadsheet(t, [][]any{
		{"Ana", "ignored"},
		{" Bruno "},
		{nil, "only second column"},
		{42},
		{"Carla"},
	})

	names, err := Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bruno", "42", "Carla"}, names)
}

func TestImportSpreadsheetCanceled(t *testing.T) {
	path := writeSpreadsheet(t, [][]any{{"Ana"}, {"Bruno"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Import(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImportDocument(t *testing.T) {
	path := writeDocument(t, "Ana", "  ", "Bruno Lima", "Carla")

	names, err := Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bruno Lima", "Carla"}, names)
}

func TestImportPDF(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"relative moves", "BT /F1 12 Tf 72 700 Td (Ana) Tj 0 -20 Td (Bruno) Tj ET"},
		{"text matrix", "BT /F1 12 Tf 1 0 0 1 72 700 Tm (Ana) Tj 1 0 0 1 72 680 Tm (Bruno) Tj ET"},
		{"next line", "BT /F1 12 Tf 14 TL 72 700 Td (Ana) Tj T* (Bruno) Tj ET"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			names, err := Import(context.Background(), writePDF(t, test.content))
			require.NoError(t, err)
			assert.Equal(t, []string{"Ana", "Bruno"}, names)
		})
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		err  error
	}{
		{"legacy excel", writeText(t, "roster.xls", "Ana"), ErrUnsupportedFormat},
		{"no extension", writeText(t, "roster", "Ana"), ErrUnsupportedFormat},
		{"empty text", writeText(t, "roster.txt", "\n  \n"), ErrNoNames},
		{"empty document", writeDocument(t), ErrNoNames},
		{"empty spreadsheet", writeSpreadsheet(t, nil), ErrNoNames},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			names, err := Import(context.Background(), test.path)
			assert.Nil(t, names)
			assert.ErrorIs(t, err, test.err)

			var importErr *ImportError
			require.ErrorAs(t, err, &importErr)
			assert.Equal(t, test.path, importErr.Path)
		})
	}
}

func TestImportBrokenFiles(t *testing.T) {
	for _, name := range []string{"roster.pdf", "roster.docx", "roster.xlsx"} {
		t.Run(name, func(t *testing.T) {
			path := writeText(t, name, "this is not what it claims to be")

			_, err := Import(context.Background(), path)

			var importErr *ImportError
			assert.ErrorAs(t, err, &importErr)
		})
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRosterImportCollapsesDuplicates(t *testing.T) {
	text := writeText(t, "roster.txt", "Ana\nBruno\n")
	sheet := writeSpreadsheet(t, [][]any{{"Bruno"}, {"Carla"}})

	roster := New("Carla")
	added, err := roster.Import(context.Background(), text, sheet)
	require.NoError(t, err)

	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"Carla", "Ana", "Bruno"}, roster.Names())
}

func TestRosterImportStopsOnError(t *testing.T) {
	good := writeText(t, "roster.txt", "Ana\n")
	bad := writeText(t, "roster.csv", "Bruno\n")

	roster := New()
	added, err := roster.Import(context.Background(), good, bad)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"Ana"}, roster.Names())
}
