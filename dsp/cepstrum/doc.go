// Package cepstrum provides post-processing helpers for cepstral
// coefficients, the DCT-II outputs of feature-extraction pipelines such as
// MFCC. Liftering re-weights the coefficients to de-emphasize the
// higher-order terms; mean normalization removes per-dimension offsets
// across frames.
package cepstrum
