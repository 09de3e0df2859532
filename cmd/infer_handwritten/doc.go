// Package main provides a program for evaluating a digit classifier on photos of
// handwritten digits. Every photo in <dir>/raw is preprocessed, classified and reported,
// followed by the success rate.
package main
