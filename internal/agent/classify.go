package agent

import (
	"fmt"
	"strings"

	"github.com/dataconv/alteryx2bq/internal/model"
)

// sqlPrefixes are the leading keywords accepted as a valid completion. A
// completion opening with anything else (including WITH) is reported as a
// failure, never retried.
var sqlPrefixes = []string{"SELECT", "CREATE", "INSERT", "MERGE"}

// conversionErrorPrefix marks a legitimate negative result from the model
const conversionErrorPrefix = "CONVERSION ERROR:"

// ClassifyCompletion inspects the model's completion and decides whether it
// looks like SQL, an explicit conversion error, or neither. Unrecognized
// completions are wrapped in a descriptive failure message rather than
// returned as-is.
func ClassifyCompletion(completion string) model.ConversionResponse {
	trimmed := strings.TrimSpace(completion)
	upper := strings.ToUpper(trimmed)

	for _, prefix := range sqlPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return model.SQLResponse(trimmed)
		}
	}
	if strings.HasPrefix(upper, conversionErrorPrefix) {
		return model.ErrorResponse(trimmed)
	}

	return model.ErrorResponse(fmt.Sprintf(
		"Conversion Error: The AI model could not generate valid BigQuery SQL from the provided Alteryx XML. Please review the XML. Raw AI response: %s",
		trimmed))
}
