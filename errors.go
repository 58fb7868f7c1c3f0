package defectgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/defectgo/neighbor"
	"github.com/hupe1980/defectgo/snapshot"
)

var (
	// ErrInvalidInput is returned when the descriptor arrays are
	// malformed. The pass aborts before any classification begins.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNeighborQuery is returned when the external neighbor-finder
	// fails. The whole pass aborts; a missing neighbor set makes the
	// atom's classification undefined.
	ErrNeighborQuery = errors.New("neighbor query failed")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Input validation normalization.
	var lm *snapshot.ErrLengthMismatch
	if errors.As(err, &lm) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var ic *snapshot.ErrInvalidCoordination
	if errors.As(err, &ic) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var ip *snapshot.ErrInvalidCentrosymmetry
	if errors.As(err, &ip) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var is *snapshot.ErrInvalidStructureType
	if errors.As(err, &is) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var il *snapshot.ErrInvalidLatticeConstant
	if errors.As(err, &il) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Neighbor service failures.
	var qe *neighbor.QueryError
	if errors.As(err, &qe) {
		return fmt.Errorf("%w: %w", ErrNeighborQuery, err)
	}

	return err
}
