// Copyright 2026 Prajna Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"github.com/prajna-labs/prajna/core"
)

// ListFiles returns the loadable files directly under dir, in lexical
// order. Files with unsupported extensions are skipped silently;
// subdirectories are not descended into.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".xlsx", ".pdf":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// LoadFile parses a single file into documents. The document source is
// the file's base name. Dispatch is by extension; unsupported
// extensions return ErrUnsupportedFormat.
func LoadFile(path string) ([]*core.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	case ".pdf":
		return loadPDF(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// loadCSV produces one document per data row, with the row's field
// values joined by single spaces. The header row is skipped.
func loadCSV(path string) ([]*core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	source := filepath.Base(path)
	reader := csv.NewReader(f)

	// Header row carries column names, not content
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	var docs []*core.Document
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}

		text := strings.TrimSpace(strings.Join(row, " "))
		if text == "" {
			continue
		}
		docs = append(docs, &core.Document{Text: text, Source: source})
	}
	return docs, nil
}

// loadXLSX produces one document per data row across all sheets. The
// first row of each sheet is treated as a header and skipped.
func loadXLSX(path string) ([]*core.Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	source := filepath.Base(path)

	var docs []*core.Document
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading %s sheet %s: %w", source, sheet, err)
		}
		for i, row := range rows {
			if i == 0 {
				continue
			}
			text := strings.TrimSpace(strings.Join(row, " "))
			if text == "" {
				continue
			}
			docs = append(docs, &core.Document{Text: text, Source: source})
		}
	}
	return docs, nil
}

// loadPDF produces one document per page. Pages that yield no text
// (scanned images, blanks) are skipped.
func loadPDF(path string) ([]*core.Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	source := filepath.Base(path)

	var docs []*core.Document
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("reading %s page %d: %w", source, i, err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		docs = append(docs, &core.Document{Text: text, Source: source})
	}
	return docs, nil
}
