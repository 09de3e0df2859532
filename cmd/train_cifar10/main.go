package main

import "flag"
import "log"
import "math/rand"
import "runtime"

import "github.com/neurlang/saliency/classifier"
import "github.com/neurlang/saliency/datasets/cifar10"
import "github.com/neurlang/saliency/learning"
import "github.com/neurlang/saliency/trainer"

func load(data string, split cifar10.Split, limit int) []trainer.Sample {
	dir, err := cifar10.Find(data, split)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	samples, err := cifar10.Load(dir, split)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	if limit > 0 && limit < len(samples) {
		samples = samples[:limit]
	}
	var o = make([]trainer.Sample, len(samples))
	for i := range samples {
		o[i] = &samples[i]
	}
	return o
}

func main() {
	data := flag.String("data", "", "directory holding the CIFAR-10 binary batches")
	limit := flag.Int("samples", 0, "train on only this many records, 0 means all")
	epochs := flag.Int("epochs", 1, "passes over all hashtrons")
	dstmodel := flag.String("model", "cifar10.json.lzw", "model weights .json.lzw file to write")
	resume := flag.Bool("resume", false, "resume training from -model")
	seed := flag.Int64("seed", 1, "seed of the initial network and hashtron order")
	significance := flag.Int("significance", 99, "confidence level of the validation sample, 100 validates on all records")
	flag.Parse()

	threads := runtime.NumCPU()
	train := load(*data, cifar10.Train, *limit)
	validation := load(*data, cifar10.Validation, 0)
	println("[train records]", len(train), "[validation records]", len(validation))

	net := classifier.New().Randomize(*seed)
	if err := trainer.Resume(&net.Net, *resume, *dstmodel); err != nil {
		log.Fatalf("[-] %v", err)
	}

	var best int
	evaluate := trainer.NewEvaluateFunc(net.Net, validation, byte(*significance), classifier.Margin, threads, &best, *dstmodel)
	tallyFunc := trainer.NewTallyFunc(net.Net, train, classifier.Margin, threads)
	trainWorst := trainer.NewTrainWorstFunc(net.Net, learning.Defaults(threads), tallyFunc)
	loop := trainer.NewLoopFunc(net.Net, rand.New(rand.NewSource(*seed)), evaluate, trainWorst)

	success := loop(*epochs)
	println("[train success rate]", success, "%", "best", best, "%", "written to", *dstmodel)
}
