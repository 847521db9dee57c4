// Package vc2 implements the VC2 reward/value normalizer:
// two independent Welford running estimators, one for the
// per-environment discounted-return signal and one for critic value
// predictions, used to normalize rewards online and to normalize and
// denormalize return/value batches for the learner.
package vc2
