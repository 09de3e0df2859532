// Package main provides a program for running inference with a CIFAR-10 hashtron classifier.
// It reports the success rate over a split or a batch file and can write the confidence of
// every record in a target class as a probabilities file, one value per line.
package main
