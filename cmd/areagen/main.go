// Command areagen prints area/perimeter challenge sets as JSON.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
