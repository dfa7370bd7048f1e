// Package output serializes inspected reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
)

// ToJSON serializes report data, indented when pretty is set.
func ToJSON(data *models.ReportData, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}
