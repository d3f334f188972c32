// Package vsm builds the Vector Space Model over per-class word documents.
//
// At fit time the package aggregates the training documents of each class
// into one class document, derives the term vocabulary, and computes an
// unnormalized tf-idf matrix of shape n_classes x n_vocabulary. At inference
// time it counts vocabulary terms in new documents and scores them against
// the class vectors by cosine similarity.
package vsm
