// Package main provides a program which renders the occlusion sensitivity heatmap of a
// CIFAR-10 image. Scores come either from a probabilities file written by infer_cifar10
// or from a hashtron classifier run in process; pixels the classifier depends on come out
// bright.
package main
