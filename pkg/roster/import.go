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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"laptudirm.com/x/seater/pkg/internal/util"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file type, use .txt, .xlsx, .pdf or .docx")
	ErrNoNames           = errors.New("no participants found in file")
)

// ImportError is returned when a roster file can't be imported.
type ImportError struct {
	Path string
	Err  error
}

func (err *ImportError) Error() string {
	return fmt.Sprintf("import %s: %v", err.Path, err.Err)
}

func (err *ImportError) Unwrap() error {
	return err.Err
}

var lineBreak = regexp.MustCompile(`\r?\n`)

// Lines splits text on line breaks and returns the trimmed, non-empty lines.
// Every importer reduces its file to names through Lines.
func Lines(text string) []string {
	var lines []string
	for _, line := range lineBreak.Split(text, -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// ParseText reads one name per line from a plain text file.
func ParseText(r io.Reader) ([]string, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Lines(string(text)), nil
}

// ParseSpreadsheet reads the names from the first column of the first sheet
// of an .xlsx workbook.
func ParseSpreadsheet(ctx context.Context, r io.Reader) ([]string, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := book.Rows(sheets[0])
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var column strings.Builder
	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cells, err := rows.Columns()
		if err != nil {
			return nil, err
		}

		if len(cells) > 0 {
			column.WriteString(cells[0])
		}
		column.WriteByte('\n')
	}

	if err := rows.Error(); err != nil {
		return nil, err
	}

	return Lines(column.String()), nil
}

// ParsePDF reads the names from the text of a PDF document. Glyphs which
// share a baseline make up a line, and a line ends wherever the baseline
// moves or a page ends.
func ParsePDF(ctx context.Context, r io.ReaderAt, size int64) ([]string, error) {
	document, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for i := 1; i <= document.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := document.Page(i)
		if page.V.IsNull() {
			continue
		}

		glyphs, err := pageText(page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}

		for j, glyph := range glyphs {
			if j > 0 && glyph.Y != glyphs[j-1].Y {
				text.WriteByte('\n')
			}

			text.WriteString(glyph.S)
		}

		text.WriteByte('\n')
	}

	return Lines(text.String()), nil
}

// pageText returns the positioned glyphs of the page. The pdf package
// panics on malformed content streams.
func pageText(page pdf.Page) (text []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content: %v", r)
		}
	}()

	return page.Content().Text, nil
}

// ParseDocument reads the names from the paragraphs of a .docx document.
func ParseDocument(r io.ReaderAt, size int64) ([]string, error) {
	archive, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	body, err := archive.Open("word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("not a word document: %w", err)
	}
	defer body.Close()

	var text strings.Builder
	inText := false

	decoder := xml.NewDecoder(body)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		switch token := token.(type) {
		case xml.StartElement:
			switch token.Name.Local {
			case "t":
				inText = true
			case "tab":
				text.WriteByte('\t')
			case "br", "cr":
				text.WriteByte('\n')
			}

		case xml.EndElement:
			switch token.Name.Local {
			case "t":
				inText = false
			case "p":
				text.WriteByte('\n')
			}

		case xml.CharData:
			if inText {
				text.Write(token)
			}
		}
	}

	return Lines(text.String()), nil
}

// Import reads the participant names from the file at path, choosing the
// importer by the file's extension.
func Import(ctx context.Context, path string) ([]string, error) {
	names, err := parse(ctx, path)
	if err == nil && len(names) == 0 {
		err = ErrNoNames
	}

	if err != nil {
		return nil, &ImportError{Path: path, Err: err}
	}

	logrus.Debugf("import %s: %d names", path, len(names))
	return names, nil
}

func parse(ctx context.Context, path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".xlsx", ".pdf", ".docx":
	default:
		return nil, ErrUnsupportedFormat
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	switch ext {
	case ".txt":
		return ParseText(file)
	case ".xlsx":
		return ParseSpreadsheet(ctx, file)
	case ".pdf":
		return ParsePDF(ctx, file, info.Size())
	default:
		return ParseDocument(file, info.Size())
	}
}

// Import adds the names from every file to the roster and returns how many
// of them were new. It stops at the first file which fails to import.
func (roster *Roster) Import(ctx context.Context, paths ...string) (int, error) {
	if len(paths) == 0 {
		return 0, nil
	}

	util.StartSpinner("Importing participants...")
	defer util.PauseSpinner()

	added := 0
	for _, path := range paths {
		names, err := Import(ctx, path)
		if err != nil {
			return added, err
		}

		added += roster.Merge(names)
	}

	return added, nil
}
