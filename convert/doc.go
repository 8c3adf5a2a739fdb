// Package convert implements the thin collaborators that produce textual
// EDS (and, where applicable, source) input for the core engine: a
// multiple-sequence-alignment converter and a reference-plus-variants
// (FASTA+VCF) converter. Per the engine's scope, these packages only
// produce text; the core parser is what gives that text meaning.
package convert
