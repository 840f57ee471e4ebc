// Package pinyin converts digit-suffixed tone romanization ("guan1xi5") into
// diacritic-marked romanization.
//
// Decompose splits the input into syllables, each a run of non-digit characters
// terminated by one tone digit 1-5. Tonify attaches the tone's combining mark to
// the first vowel of every syllable and concatenates the result:
//
//	Tonify("guan1xi5") == "gu\u0304anxi"
//
// Errors:
//
//   - ErrMalformedRomanization: no digit boundary, consecutive digits, a trailing
//     run without a digit, or a digit outside 1-5.
package pinyin
