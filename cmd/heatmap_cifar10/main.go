package main

import "flag"
import "fmt"
import "log"

import "github.com/neurlang/saliency/classifier"
import "github.com/neurlang/saliency/datasets/cifar10"
import "github.com/neurlang/saliency/heatmap"
import "github.com/neurlang/saliency/preview"

func main() {
	config := flag.String("config", "", "heatmap geometry .yaml file, defaults to 32x32 image, 8x8 patch, stride 2")
	probabilities := flag.String("probabilities", "", "probabilities file, baseline on the first line")
	model := flag.String("model", "", "model weights .json.lzw file, scores the image in process")
	seed := flag.Int64("seed", 0, "score in process with an untrained network of this seed instead of -model")
	data := flag.String("data", "", "directory holding the CIFAR-10 binary batches")
	split := flag.String("split", string(cifar10.Eval), "split to take the image from")
	index := flag.Int("index", 8, "index of the image within the split")
	class := flag.Int("class", -1, "target class, defaults to the image label")
	probabilitiesOut := flag.String("probabilities-out", "", "write the scores computed in process to this file")
	out := flag.String("out", "heatmap.png", "destination png file")
	scale := flag.Int("scale", 1, "enlarge the png this many times")
	show := flag.Bool("preview", false, "show the heatmap in the terminal")
	flag.Parse()

	cfg := heatmap.DefaultConfig()
	if *config != "" {
		c, err := heatmap.LoadConfig(*config)
		if err != nil {
			log.Fatalf("[-] %v", err)
		}
		cfg = *c
	}

	var m *heatmap.Map
	var title string
	switch {
	case *probabilities != "":
		scores, err := heatmap.ReadScoresFile(*probabilities)
		if err != nil {
			log.Fatalf("[-] %v", err)
		}
		m, err = heatmap.FromScores(cfg, scores)
		if err != nil {
			log.Fatalf("[-] %v", err)
		}
		title = fmt.Sprintf("%s, baseline %.4f", *probabilities, scores[0])

	case *model != "" || *seed != 0:
		net, err := loadClassifier(*model, *seed)
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
		target := int(sample.Label)
		if *class >= 0 {
			target = *class
		}
		scorer := classifier.Scorer{Classifier: net, Class: target}
		var scores []float64
		m, scores, err = heatmap.Compute(cfg, sample.Image(), scorer, nil)
		if err != nil {
			log.Fatalf("[-] %v", err)
		}
		if *probabilitiesOut != "" {
			if err := heatmap.WriteScoresFile(*probabilitiesOut, scores); err != nil {
				log.Fatalf("[-] %v", err)
			}
		}
		title = fmt.Sprintf("image %d, class %s, baseline %.4f", *index, cifar10.Labels[target%cifar10.Classes], scores[0])

	default:
		log.Fatalf("[-] one of -probabilities, -model or -seed is required")
	}

	if err := heatmap.WritePNG(*out, m.Scaled(*scale)); err != nil {
		log.Fatalf("[-] %v", err)
	}
	println("[heatmap]", *out)

	if *show {
		if err := preview.Show(m.Gray(), title, preview.Heat); err != nil {
			log.Fatalf("[-] %v", err)
		}
	}
}

func loadClassifier(model string, seed int64) (*classifier.Classifier, error) {
	if model == "" {
		println("[untrained network] seed", seed)
		return classifier.Random(seed), nil
	}
	return classifier.Load(model)
}
