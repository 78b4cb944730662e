// Package cluster - validation utilities for the controller.
//
// This file contains the fail-fast stages that guarantee a Fit either
// runs to completion or never starts (no mid-loop discovery):
//  1. Validate Config combinations (k, tags, bounds, DBA ↔ path metric).
//  2. Validate the dataset against the config (size, equal lengths).
//  3. Probe the metric once, surfacing parameter errors (bad window,
//     negative epsilon, …) before the first iteration.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors.
package cluster

import (
	"github.com/katalvlaran/tscluster/elastic"
	"github.com/katalvlaran/tscluster/series"
)

// validateConfig checks internal consistency of Config without touching
// data.
//
// Complexity: O(1).
func validateConfig(cfg Config) error {
	if cfg.NumClusters <= 0 {
		return ErrBadClusterCount
	}
	if cfg.Metric == nil {
		return ErrNilMetric
	}
	switch cfg.Init {
	case InitForgy, InitRandom, InitKMeansPP:
	default:
		return ErrBadInitMethod
	}
	switch cfg.Averaging {
	case AverageMean, AverageDBA, AverageMedoid:
	default:
		return ErrBadAveragingMethod
	}
	if cfg.MaxIter <= 0 {
		return ErrBadMaxIter
	}
	if cfg.Tolerance < 0 {
		return ErrBadTolerance
	}
	if cfg.Averaging == AverageDBA {
		if cfg.AveragingIterations <= 0 {
			return ErrBadAveragingIterations
		}
		if _, ok := cfg.Metric.(elastic.PathMetric); !ok {
			return ErrPathMetricRequired
		}
	}
	return nil
}

// validateDataset checks the dataset against the configured engine and
// probes the metric once with a self-comparison, so every
// invalid-parameter error surfaces here rather than mid-loop.
//
// Complexity: O(n) plus one metric evaluation.
func validateDataset(ds *series.Dataset, cfg Config) error {
	if ds == nil || ds.Len() == 0 {
		return ErrNilDataset
	}
	if ds.Len() < cfg.NumClusters {
		return ErrInsufficientData
	}
	if cfg.Averaging == AverageMean && !ds.EqualLengths() {
		return ErrUnequalLengths
	}

	// Parameter probe: d(s,s) exercises the full option validation of
	// the metric (and must come back 0 for any lawful measure).
	if _, err := cfg.Metric.Distance(ds.At(0), ds.At(0)); err != nil {
		return err
	}

	// Strict-measure probe: if lengths vary, compare one differing pair
	// now so an equal-length-only metric (Euclidean) fails here, not
	// mid-loop.
	if !ds.EqualLengths() {
		ref := ds.At(0).Len()
		for i := 1; i < ds.Len(); i++ {
			if ds.At(i).Len() != ref {
				if _, err := cfg.Metric.Distance(ds.At(0), ds.At(i)); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}
