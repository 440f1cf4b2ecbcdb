// Command deck_preview prints the slide texts of a generated deck as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"statusdeck/export"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: deck_preview <file.pptx>")
		os.Exit(1)
	}

	slides, err := export.PreviewDeck(os.Args[1])
	if err != nil {
		fmt.Printf("Error reading deck: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(slides); err != nil {
		fmt.Printf("Error encoding preview: %v\n", err)
		os.Exit(1)
	}
}
