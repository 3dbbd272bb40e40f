// Command braillify encodes, decodes, and visualizes binary data as
// braille characters.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
