// Package quality scores the release-quality portion of a media filename.
//
// A Scorer is built from an immutable Lexicon mapping lowercase quality
// keywords (resolution, source, codec, audio, edition tags) to integer
// weights. Scoring is substring-based and cumulative: every keyword found in
// the fragment contributes its weight, so overlapping keywords such as
// "webdl" and "web" both count. An optional size penalty lets file size break
// ties without dominating genuine quality signal.
package quality
