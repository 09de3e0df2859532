package main

import "flag"
import "log"
import "runtime"
import "sync/atomic"

import "github.com/neurlang/saliency/classifier"
import "github.com/neurlang/saliency/datasets/cifar10"
import "github.com/neurlang/saliency/heatmap"
import "github.com/neurlang/saliency/parallel"

func main() {
	model := flag.String("model", "", "model weights .json.lzw file")
	seed := flag.Int64("seed", 0, "evaluate an untrained network of this seed instead of -model")
	data := flag.String("data", "", "directory holding the CIFAR-10 binary batches")
	split := flag.String("split", string(cifar10.Eval), "split to evaluate: train, validation or eval")
	batch := flag.String("batch", "", "evaluate this batch file instead of a split")
	class := flag.Int("class", -1, "class written to -probabilities-out, defaults to each record's label")
	probabilities := flag.String("probabilities-out", "", "write the confidence of every record to this file")
	flag.Bool("pgo", false, "enable pgo")
	flag.Parse()

	var net *classifier.Classifier
	var err error
	switch {
	case *model != "":
		net, err = classifier.Load(*model)
		if err != nil {
			log.Fatalf("[-] %v", err)
		}
	case *seed != 0:
		println("[untrained network] seed", *seed)
		net = classifier.Random(*seed)
	default:
		log.Fatalf("[-] -model or -seed is required")
	}

	var samples []cifar10.Sample
	if *batch != "" {
		samples, err = cifar10.ReadBatchFile(*batch)
	} else {
		var dir string
		dir, err = cifar10.Find(*data, cifar10.Split(*split))
		if err == nil {
			samples, err = cifar10.Load(dir, cifar10.Split(*split))
		}
	}
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	if len(samples) == 0 {
		log.Fatalf("[-] no records to evaluate")
	}
	if *class >= cifar10.Classes {
		log.Fatalf("[-] class %d out of range", *class)
	}

	var percent atomic.Uint64
	var scores = make([]float64, len(samples))
	parallel.ForEach(len(samples), runtime.NumCPU(), func(j int) {
		var io = &samples[j]
		if net.Predict(io) == int(io.Output()) {
			percent.Add(1)
		}
		var p = net.Probabilities(io)
		if *class >= 0 {
			scores[j] = p[*class]
		} else {
			scores[j] = p[io.Label]
		}
	})
	success := int(percent.Load()) * 100 / len(samples)
	println("[infer success rate]", success, "%", "of", len(samples))

	if *probabilities != "" {
		if err := heatmap.WriteScoresFile(*probabilities, scores); err != nil {
			log.Fatalf("[-] %v", err)
		}
		println("[probabilities]", len(scores), "written to", *probabilities)
	}
}
