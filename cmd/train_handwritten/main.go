package main

import "flag"
import "log"
import "math/rand"
import "path/filepath"
import "runtime"

import "github.com/neurlang/saliency/classifier"
import "github.com/neurlang/saliency/datasets/handwritten"
import "github.com/neurlang/saliency/learning"
import "github.com/neurlang/saliency/trainer"

func main() {
	dir := flag.String("dir", "new-data", "data folder holding the raw subfolder")
	epochs := flag.Int("epochs", 3, "passes over all hashtrons")
	dstmodel := flag.String("model", "digits.json.lzw", "model weights .json.lzw file to write")
	resume := flag.Bool("resume", false, "resume training from -model")
	seed := flag.Int64("seed", 1, "seed of the initial network and hashtron order")
	flag.Parse()

	digits, err := handwritten.ProcessDir(filepath.Join(*dir, "raw"), "")
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	if len(digits) == 0 {
		log.Fatalf("[-] no digits in %s", filepath.Join(*dir, "raw"))
	}
	var samples = make([]trainer.Sample, len(digits))
	for i := range digits {
		samples[i] = &digits[i]
	}

	threads := runtime.NumCPU()
	net := classifier.NewDigits().Randomize(*seed)
	if err := trainer.Resume(&net.Net, *resume, *dstmodel); err != nil {
		log.Fatalf("[-] %v", err)
	}

	var best int
	evaluate := trainer.NewEvaluateFunc(net.Net, samples, 100, classifier.Margin, threads, &best, *dstmodel)
	tallyFunc := trainer.NewTallyFunc(net.Net, samples, classifier.Margin, threads)
	trainWorst := trainer.NewTrainWorstFunc(net.Net, learning.Defaults(threads), tallyFunc)
	loop := trainer.NewLoopFunc(net.Net, rand.New(rand.NewSource(*seed)), evaluate, trainWorst)

	success := loop(*epochs)
	println("[train success rate]", success, "%", "best", best, "%", "written to", *dstmodel)
}
