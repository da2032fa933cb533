// Package wordclass turns OCR text into a pool of candidate words: nouns and
// verbs, or tokens that look like them.
//
// Two strategies implement Classifier:
//
//   - Pipeline tags tokens with a part-of-speech Tagger loaded from a language
//     model file and keeps alphabetic NOUN, PROPN, VERB and AUX tokens.
//   - Heuristic needs no model. It keeps capitalized tokens, tokens with a
//     German verb ending, and alphabetic tokens longer than three characters,
//     checked in that order.
//
// Select picks Pipeline when the model for a language loads and Heuristic
// otherwise. A model that cannot be loaded is never an error for the caller;
// it only changes the strategy.
//
// # Model files
//
// Models are YAML documents named after ModelNames and stored in a Registry
// directory:
//
//	name: de-news-small
//	language: de
//	capitalized: NOUN
//	default: X
//	lexicon:
//	  AUX: [sein, ist, sind, hat, haben, wird, werden]
//	  DET: [der, die, das]
//	suffixes:
//	  - {suffix: ung, tag: NOUN, min_stem: 2}
//	  - {suffix: en, tag: VERB, min_stem: 2}
package wordclass
