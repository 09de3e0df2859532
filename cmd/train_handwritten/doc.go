// Package main provides a program for training a hashtron classifier of 28x28 handwritten
// digits. Photos in <dir>/raw are preprocessed the way preprocess_handwritten does it and
// the network is trained and validated on them.
package main
