package main

import "flag"
import "fmt"
import "log"
import "path/filepath"

import "github.com/neurlang/saliency/datasets/handwritten"

func main() {
	dir := flag.String("dir", "new-data", "data folder holding the raw subfolder")
	flag.Parse()

	samples, err := handwritten.ProcessDir(filepath.Join(*dir, "raw"), filepath.Join(*dir, "proc"))
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	var counts [10]int
	for _, s := range samples {
		counts[s.Label]++
	}
	for digit, n := range counts {
		if n > 0 {
			fmt.Printf("[*] digit %d: %d images\n", digit, n)
		}
	}
	println("[processed]", len(samples), "images into", filepath.Join(*dir, "proc"))
}
