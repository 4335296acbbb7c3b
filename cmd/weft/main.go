// Package main provides the Weft CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Weft %s\n", version)
			return
		case "gpu":
			probeGPU()
			return
		}
	}

	fmt.Println("Weft - tensor storage on pooled GPU textures")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  gpu        Probe WebGPU availability")
}
