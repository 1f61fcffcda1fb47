package prompt

import (
	"fmt"
	"strings"
	"testing"
)

func TestConversionEmbedsXML(t *testing.T) {
	xml := `<AlteryxWorkflow><Nodes/></AlteryxWorkflow>`
	got := Conversion(xml, nil)

	if !strings.Contains(got, xml) {
		t.Error("prompt should embed the literal XML input")
	}
	if !strings.Contains(got, "BigQuery Standard SQL") {
		t.Error("prompt should state the target dialect")
	}
	if !strings.Contains(got, `"Conversion Error:"`) {
		t.Error("prompt should instruct the model to emit the error marker")
	}
	if strings.Contains(got, "Simplified representation") {
		t.Error("no fragments were given, so no simplified block should appear")
	}
}

func TestConversionIsDeterministic(t *testing.T) {
	xml := `<a><b>1</b></a>`
	fragments := []string{"<b> 1"}
	if Conversion(xml, fragments) != Conversion(xml, fragments) {
		t.Error("identical inputs should produce identical prompts")
	}
}

func TestConversionCapsFragments(t *testing.T) {
	var fragments []string
	for i := 0; i < 80; i++ {
		fragments = append(fragments, fmt.Sprintf("<item> value-%d", i))
	}

	got := Conversion("<root/>", fragments)
	if !strings.Contains(got, "first 50 elements") {
		t.Error("simplified block should be capped at 50 fragments")
	}
	if strings.Contains(got, "value-50") {
		t.Error("fragments past the cap should not appear in the prompt")
	}
	if !strings.Contains(got, "value-49") {
		t.Error("fragments inside the cap should appear in the prompt")
	}
}
