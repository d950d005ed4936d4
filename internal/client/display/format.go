package display

import (
	"encoding/json"
	"fmt"

	"bull/internal/endpoint"
)

// PrettyPrintJSON prints formatted JSON
func PrettyPrintJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%sError formatting JSON: %s%s\n", Red, err.Error(), Reset)
		return
	}
	fmt.Println(string(data))
}

// FormatEndpoint renders an endpoint with its source, overrides highlighted
func FormatEndpoint(e endpoint.Endpoint) string {
	color := Green
	if e.Source != endpoint.SourceDefault {
		color = Magenta
	}
	return fmt.Sprintf("%s%s%s (%s)", color, e.Value, Reset, e.Source)
}
