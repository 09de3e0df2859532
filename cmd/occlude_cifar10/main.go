package main

import "flag"
import "fmt"
import "log"
import "os"

import "github.com/neurlang/saliency/datasets/cifar10"
import "github.com/neurlang/saliency/heatmap"
import "github.com/neurlang/saliency/occlusion"

func main() {
	data := flag.String("data", "", "directory holding the CIFAR-10 binary batches")
	split := flag.String("split", string(cifar10.Eval), "split to take the image from: train, validation or eval")
	index := flag.Int("index", 8, "index of the image within the split")
	config := flag.String("config", "", "heatmap geometry .yaml file, defaults to 32x32 image, 8x8 patch, stride 2")
	out := flag.String("out", "occluded.bin", "destination batch file")
	pngdir := flag.String("pngdir", "", "also write every image as png into this directory")
	flag.Parse()

	cfg := heatmap.DefaultConfig()
	if *config != "" {
		c, err := heatmap.LoadConfig(*config)
		if err != nil {
			log.Fatalf("[-] %v", err)
		}
		cfg = *c
	}
	grid, err := cfg.Grid()
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	dir, err := cifar10.Find(*data, cifar10.Split(*split))
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	samples, err := cifar10.Load(dir, cifar10.Split(*split))
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	if *index < 0 || *index >= len(samples) {
		log.Fatalf("[-] index %d outside the %d images of %s", *index, len(samples), *split)
	}
	sample := &samples[*index]
	fmt.Printf("[*] image %d of %s, label %d (%s)\n", *index, *split, sample.Label, cifar10.Labels[sample.Label])

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	batch := cifar10.NewBatchWriter(file, sample.Label)
	var auditor occlusion.Auditor = batch
	if *pngdir != "" {
		if err := os.MkdirAll(*pngdir, 0755); err != nil {
			log.Fatalf("[-] %v", err)
		}
		auditor = occlusion.MultiAuditor{batch, occlusion.PNGAuditor{Dir: *pngdir}}
	}

	sampler := occlusion.NewSampler(grid, cfg.OcclusionValue)
	sampler.Auditor = auditor
	// only the audited images are wanted
	none := occlusion.ScorerFunc(func(*occlusion.Image) (float64, error) { return 0, nil })
	if _, err := sampler.Sample(sample.Image(), none); err != nil {
		log.Fatalf("[-] %v", err)
	}
	if err := batch.Flush(); err != nil {
		log.Fatalf("[-] %v", err)
	}
	if err := file.Close(); err != nil {
		log.Fatalf("[-] %v", err)
	}
	println("[occluded records]", batch.Len(), "written to", *out)
}
