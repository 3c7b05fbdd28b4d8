package viz

import "errors"

//Renderer preconditions are checked before the first draw call.  Once
//drawing has begun there is no rollback: whatever already landed on the
//shared surface stays there.
var (
	//ErrInvalidSeriesKind means the requested series kind is not in the
	//supported set -- a caller error.
	ErrInvalidSeriesKind = errors.New("invalid series kind")

	//ErrUnimplementedSeries means the series kind is recognized but not
	//supported yet -- a known gap, distinct from a caller error.
	ErrUnimplementedSeries = errors.New("series kind not implemented yet")

	//ErrShapeMismatch means the inputs have incompatible shapes: a palette
	//smaller than the required color count, series of unequal length, or a
	//comparison given other than exactly two series.
	ErrShapeMismatch = errors.New("shape mismatch")
)
