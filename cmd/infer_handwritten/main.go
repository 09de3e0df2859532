package main

import "flag"
import "fmt"
import "log"
import "path/filepath"

import "github.com/neurlang/saliency/classifier"
import "github.com/neurlang/saliency/datasets/handwritten"

func main() {
	dir := flag.String("dir", "new-data", "data folder holding the raw subfolder")
	model := flag.String("model", "digits.json.lzw", "model weights .json.lzw file")
	proc := flag.Bool("proc", true, "write the preprocessed images to the proc subfolder")
	flag.Parse()

	net := classifier.NewDigits()
	if err := net.LoadWeights(*model); err != nil {
		log.Fatalf("[-] %v", err)
	}

	var procdir string
	if *proc {
		procdir = filepath.Join(*dir, "proc")
	}
	digits, err := handwritten.ProcessDir(filepath.Join(*dir, "raw"), procdir)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	if len(digits) == 0 {
		log.Fatalf("[-] no digits in %s", filepath.Join(*dir, "raw"))
	}

	var correct int
	for i := range digits {
		d := &digits[i]
		got := net.Predict(d)
		mark := "-"
		if got == d.Label {
			correct++
			mark = "+"
		}
		fmt.Printf("[%s] %s: label %d, predicted %d\n", mark, d.Name, d.Label, got)
	}
	println("[infer success rate]", correct*100/len(digits), "%", "of", len(digits))
}
