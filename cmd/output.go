package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
)

// printJSON writes v as indented JSON to stdout
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printToon writes v in the LLM-friendly toon format to stdout
func printToon(v any) error {
	output, err := gotoon.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode Toon: %w", err)
	}
	fmt.Println(output)
	return nil
}
