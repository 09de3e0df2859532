// Package main provides a program which writes the occlusion batch of one CIFAR-10 image:
// the unoccluded image followed by one copy per patch with the patch blacked out, all as
// records of a CIFAR-10 batch file that infer_cifar10 can score into a probabilities file.
package main
