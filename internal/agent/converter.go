package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/dataconv/alteryx2bq/internal/llm"
	"github.com/dataconv/alteryx2bq/internal/model"
	"github.com/dataconv/alteryx2bq/internal/prompt"
	"github.com/dataconv/alteryx2bq/internal/xmlval"
)

// Converter runs the XML pipeline: strict validation, prompt assembly, one
// gateway call, and classification of the completion. Malformed XML never
// reaches the gateway.
type Converter struct {
	gateway llm.Gateway
}

// NewConverter creates the XML pipeline around a gateway
func NewConverter(gateway llm.Gateway) *Converter {
	return &Converter{gateway: gateway}
}

// Convert turns Alteryx XML into BigQuery SQL, or into a user-facing error
func (c *Converter) Convert(ctx context.Context, text string) model.ConversionResponse {
	result := xmlval.Validate(text)
	if result.Kind != xmlval.WellFormed {
		log.Printf("Converter: invalid XML input: %s", result.Err)
		return model.ErrorResponse(fmt.Sprintf(
			"Error: Invalid Alteryx XML format. Please check your XML syntax. Details: %s", result.Err))
	}

	if !xmlval.HasAlteryxRoot(text) {
		// Not a known Alteryx root tag; the model gets to decide.
		log.Printf("Converter: no Alteryx root element found, converting anyway")
	}

	completion, err := c.gateway.Generate(ctx, prompt.Conversion(text, result.Fragments))
	if err != nil {
		log.Printf("Converter: error during SQL generation: %v", err)
		return model.ErrorResponse(fmt.Sprintf(
			"Conversion Error: Failed to generate BigQuery SQL using the AI model. Details: %v", err))
	}

	return ClassifyCompletion(completion)
}
