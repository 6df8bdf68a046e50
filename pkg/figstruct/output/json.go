// Package output serializes extracted figures and delivers them to the
// viewer.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// AxesToJSON serializes a single axes record.
func AxesToJSON(ax *models.AxesRecord, pretty bool) ([]byte, error) {
	return ToJSON(ax, pretty)
}

// AxesFileName is the file name of the i-th axes in an axes directory.
func AxesFileName(figID, i int) string {
	return fmt.Sprintf("figure%d_axes%d.json", figID, i+1)
}

// WriteAxesFiles writes one JSON file per axes of rec into dir.
func WriteAxesFiles(rec *models.FigureRecord, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for i := range rec.Axes {
		data, err := AxesToJSON(&rec.Axes[i], pretty)
		if err != nil {
			return err
		}
		name := filepath.Join(dir, AxesFileName(rec.ID, i))
		if err := os.WriteFile(name, data, 0644); err != nil {
			return err
		}
	}
	return nil
}
