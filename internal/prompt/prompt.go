// Package prompt assembles the instruction strings sent to the model. Every
// function here is deterministic string formatting with no side effects.
package prompt

import (
	"fmt"
	"strings"
)

// ChatInstruction is the system instruction for the conversational pipeline
const ChatInstruction = "You are a friendly assistant for general conversations. " +
	"You can also help users convert Alteryx XML workflows to BigQuery SQL when they paste the XML directly."

// maxFragments caps the simplified XML rendering to keep prompts inside the
// model's token budget.
const maxFragments = 50

const conversionHeader = `You are an expert Alteryx and BigQuery SQL developer.
Your task is to convert the provided Alteryx XML backend code into a functional BigQuery Standard SQL query.
Focus on the main data flow and transformations (e.g., Input Data, Select, Filter, Join, Union, Output Data).
Infer table names, column names, and data types where necessary from the context of the Alteryx XML.
Assume the source tables for Alteryx Input Data tools exist in BigQuery.`

const conversionFooter = `Based on this Alteryx XML, generate the corresponding BigQuery SQL.
Do NOT include any explanations, preambles, or conversational text. Just provide the SQL code.
If the XML is clearly not a valid Alteryx workflow or too complex/malformed to convert,
provide a concise error message starting with "Conversion Error:" instead of SQL.`

// Conversion builds the full instruction for the XML pipeline. The literal
// XML is always embedded; when the validator extracted fragments, a simplified
// rendering capped at the first 50 entries is appended as extra context.
func Conversion(xmlCode string, fragments []string) string {
	var b strings.Builder
	b.WriteString(conversionHeader)
	b.WriteString("\n\nHere is the Alteryx XML backend code:\n\n```xml\n")
	b.WriteString(xmlCode)
	b.WriteString("\n```\n")

	if len(fragments) > 0 {
		if len(fragments) > maxFragments {
			fragments = fragments[:maxFragments]
		}
		fmt.Fprintf(&b, "\nSimplified representation of the workflow (first %d elements):\n\n%s\n",
			len(fragments), strings.Join(fragments, "\n"))
	}

	b.WriteString("\n")
	b.WriteString(conversionFooter)
	return b.String()
}
