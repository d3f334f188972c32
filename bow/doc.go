// Package bow extracts bag-of-words documents from symbolic series.
//
// A sliding window of fixed size moves across each symbolic string at a fixed
// step; every window position yields one word. With numerosity reduction
// enabled, runs of back-to-back identical words are collapsed to a single
// occurrence before the words are space-joined into the sample's document.
//
// Window size and step may be given either as absolute lengths or as fractions
// of the series length, which are resolved with ceil at transform time.
package bow
