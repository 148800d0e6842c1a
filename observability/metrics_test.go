package observability

import (
	"fmt"
	apperrors "recipe-live/errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordStoreOperation(t *testing.T) {
	req := require.New(t)
	before := testutil.ToFloat64(StoreErrors.WithLabelValues("create_rating", "conflict"))

	RecordStoreOperation("create_rating", time.Now(), nil)
	RecordStoreOperation("create_rating", time.Now(), fmt.Errorf("create: %w", apperrors.ErrConflict))

	req.Equal(before+1, testutil.ToFloat64(StoreErrors.WithLabelValues("create_rating", "conflict")))
}

func TestErrorType(t *testing.T) {
	req := require.New(t)
	req.Equal("not_found", errorType(apperrors.ErrNotFound))
	req.Equal("forbidden", errorType(apperrors.ErrForbidden))
	req.Equal("internal", errorType(fmt.Errorf("boom")))
}
