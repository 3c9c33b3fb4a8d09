// Package reconciler runs one consolidation: it joins per-source character
// records into bundles, collapses wiki pages that describe the same character,
// resolves each character against the Marvel catalogs and merges every bundle
// into a canonical record.
package reconciler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/logging"
	"github.com/agentstation/heromap/pkg/provenance"
)

// Reconciler is the main interface for consolidating character data.
type Reconciler interface {
	// Run consolidates the input into one canonical record per character.
	Run(ctx context.Context, input *Input) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	concurrency int
	tracking    bool
	dedupe      bool
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &reconciler{
		concurrency: options.concurrency,
		tracking:    options.tracking,
		dedupe:      options.dedupe,
	}, nil
}

// runContext holds shared state for one run.
type runContext struct {
	ctx       context.Context
	collector *collector
	tracker   provenance.Tracker
	logger    *zerolog.Logger
	result    *Result
}

// Run performs the consolidation step by step. Cancellation is checked
// between steps; a step always runs to completion once started.
func (r *reconciler) Run(ctx context.Context, input *Input) (*Result, error) {
	// Step 1: Initialize context and validate
	rctx, err := r.initialize(ctx, input)
	if err != nil {
		return nil, err
	}

	// Step 2: Join source records into bundles
	bundles, err := rctx.collector.bundles()
	if err != nil {
		return nil, err
	}
	rctx.result.Stats.BundlesIn = len(bundles)
	rctx.result.Stats.countCoverage(bundles)
	rctx.logger.Info().
		Int("bundle_count", len(bundles)).
		Msg("Joined source records")
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	// Step 3: Collapse duplicate wiki pages
	if r.dedupe {
		bundles, err = r.collapse(rctx, bundles)
		if err != nil {
			return nil, err
		}
		if err := checkContext(ctx); err != nil {
			return nil, err
		}
	}

	// Step 4: Resolve identities and merge each bundle
	outcomes := r.process(rctx, bundles)
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	// Step 5: Build and return result
	return r.finish(rctx, outcomes)
}

// initialize sets up the run context.
func (r *reconciler) initialize(ctx context.Context, input *Input) (*runContext, error) {
	if input == nil {
		return nil, &errors.ValidationError{
			Field:   "input",
			Message: "cannot be nil",
		}
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	ctx = logging.WithField(ctx, "component", "reconciler")
	logger := logging.FromContext(ctx)

	validation := validateInput(input)
	for _, w := range validation.Warnings {
		logging.FromContext(logging.WithCharacter(ctx, w.ResourceID)).Warn().
			Str("field", w.Field).
			Msg(w.Message)
	}
	if !validation.IsValid() {
		first := validation.Errors[0]
		return nil, &errors.ValidationError{
			Field:   first.Field,
			Value:   first.ResourceID,
			Message: first.Message,
		}
	}

	result := NewResult()
	result.Metadata.Concurrency = r.concurrency
	result.Metadata.Deduplicated = r.dedupe
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.String())
	}

	logger.Debug().
		Int("concurrency", r.concurrency).
		Bool("provenance", r.tracking).
		Bool("dedupe", r.dedupe).
		Msg("Starting consolidation")

	return &runContext{
		ctx:       ctx,
		collector: newCollector(input),
		tracker:   provenance.NewTracker(r.tracking),
		logger:    logger,
		result:    result,
	}, nil
}

// finish assembles the result from per-bundle outcomes in bundle order.
func (r *reconciler) finish(rctx *runContext, outcomes []outcome) (*Result, error) {
	result := rctx.result
	result.Records = make([]*characters.Record, 0, len(outcomes))
	result.Bundles = make([]*characters.Bundle, 0, len(outcomes))

	for _, o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		result.Records = append(result.Records, o.record)
		result.Bundles = append(result.Bundles, o.bundle)
		result.Stats.countOutcome(o)
		result.Warnings = append(result.Warnings, o.warnings...)
	}
	result.Stats.RecordsOut = len(result.Records)
	result.Provenance = rctx.tracker.Map()
	result.Finalize()

	rctx.logger.Info().
		Int("bundles_in", result.Stats.BundlesIn).
		Int("duplicates_collapsed", result.Stats.DuplicatesCollapsed).
		Int("records_out", result.Stats.RecordsOut).
		Int("ambiguous", result.Stats.Ambiguous).
		Dur("duration", result.Metadata.Duration.Round(time.Millisecond)).
		Msg("Consolidation complete")

	return result, nil
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.NewResourceError("consolidate", "characters", "", errors.Join(errors.ErrCanceled, err))
	}
	return nil
}
