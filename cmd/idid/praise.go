// Package main provides the entry point for the idid CLI.
package main

import "math/rand/v2"

var praises = []string{
	"All right",
	"Brilliant",
	"Excellent",
	"Fantastic",
	"Good going",
	"Good job",
	"Great work",
	"Impressive",
	"Keep it up",
	"Kudos",
	"Nailed it",
	"Nice going",
	"Nice",
	"Outstanding",
	"Phenomenal",
	"Respect",
	"Sensational",
	"Simply superb",
	"Smashing",
	"Stellar",
	"Thank you",
	"Way to go",
	"Well done",
	"Wonderfull",
}

var punctuation = []string{".", "!", "!!"}

// praise returns a short random encouragement.
func praise() string {
	return praises[rand.IntN(len(praises))] + punctuation[rand.IntN(len(punctuation))]
}
