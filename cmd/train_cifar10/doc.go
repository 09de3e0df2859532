// Package main provides a program for training the CIFAR-10 hashtron classifier.
// Hashtrons are retrained one at a time from the votes of the training split, last layer
// first, and the most accurate network on the validation split is written to -model.
package main
