// Package main provides a program which preprocesses photos of handwritten digits into
// centred 28x28 MNIST style images. Photos are read from <dir>/raw, their names starting
// with the digit they show, and the processed images are written to <dir>/proc.
package main
