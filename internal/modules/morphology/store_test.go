package morphology

import (
	"reflect"
	"testing"

	"github.com/lingo-polska/core/internal/models"
	"github.com/stretchr/testify/assert"
)

// MySQL's binary protocol caps a prepared statement at 65535 placeholders.
// Inserts bind every word_forms column except the auto-increment ID, so the
// per-statement batch size must keep a full batch under that cap no matter
// how large a slice the ingest tool hands BulkUpsert.
func TestInsertBatchFitsPlaceholderLimit(t *testing.T) {
	cols := reflect.TypeOf(models.WordFormModel{}).NumField() - 1
	assert.LessOrEqual(t, insertBatchSize*cols, 65535)
}
