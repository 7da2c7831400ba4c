package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyStringIsOrderIndependent(t *testing.T) {
	a := NewKey(QueryOpOrders, "page", 1, "limit", 10, "status", "pending")
	b := NewKey(QueryOpOrders, "status", "pending", "limit", 10, "page", 1)

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, "query:orders:limit=10:page=1:status=pending", a.String())
}

func TestKeyWithoutParams(t *testing.T) {
	assert.Equal(t, "query:top-products", NewKey(QueryOpTopProducts).String())
}

func TestPatternAndOpOf(t *testing.T) {
	key := NewKey(QueryOpSalesByPeriod, "period", "week").String()

	assert.Equal(t, "query:sales-by-period:*", Pattern(QueryOpSalesByPeriod))
	assert.Equal(t, "query:sales-by-period", Base(QueryOpSalesByPeriod))
	assert.Equal(t, QueryOpSalesByPeriod, OpOf(key))
	assert.Equal(t, QueryOp(""), OpOf("session:1"))
	assert.Equal(t, "query-gen:sales-by-period", GenerationKey(QueryOpSalesByPeriod))
	assert.Equal(t, QueryOp(""), OpOf(GenerationKey(QueryOpSalesByPeriod)))
}

func TestOrderPatternsDoNotOverlap(t *testing.T) {
	// "order" must not sweep "orders" keys and vice versa.
	assert.Equal(t, "query:order:*", Pattern(QueryOpOrder))
	assert.NotEqual(t, OpOf(NewKey(QueryOpOrders).String()), QueryOpOrder)
}
