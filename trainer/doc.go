// Package trainer drives hashtron network training: it tallies how each
// hashtron should answer, solves a new hashtron from the tally and keeps it
// only while the network does not get worse.
package trainer
