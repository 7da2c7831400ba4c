package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsFindsWrappedDomainError(t *testing.T) {
	err := fmt.Errorf("update order: %w", ErrStatusRejected)

	de, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, "STATUS_REJECTED", de.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, de.Status)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
