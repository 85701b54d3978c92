package output

import (
	"encoding/json"

	"github.com/taxgo/itr-calculator/internal/domain"
)

// JSONFormatter serializes the worksheet as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(ws *domain.Worksheet) ([]byte, error) {
	return json.MarshalIndent(ws, "", "  ")
}
