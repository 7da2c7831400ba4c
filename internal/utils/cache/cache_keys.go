package cache

import (
	"fmt"
	"sort"
	"strings"
)

// QueryOp names a cached read operation. Invalidation works per op, so every cached
// read must use one of these constants.
type QueryOp string

const (
	QueryOpOrders            QueryOp = "orders"
	QueryOpOrder             QueryOp = "order"
	QueryOpSalesByPeriod     QueryOp = "sales-by-period"
	QueryOpTopProducts       QueryOp = "top-products"
	QueryOpSalesByCategory   QueryOp = "sales-by-category"
	QueryOpConversionMetrics QueryOp = "conversion-metrics"
	QueryOpRecentActivity    QueryOp = "recent-activity"
)

// Namespace prefixes every query cache key in Redis.
const Namespace = "query"

// AllOps lists every known op, in a stable order.
func AllOps() []QueryOp {
	return []QueryOp{
		QueryOpOrders,
		QueryOpOrder,
		QueryOpSalesByPeriod,
		QueryOpTopProducts,
		QueryOpSalesByCategory,
		QueryOpConversionMetrics,
		QueryOpRecentActivity,
	}
}

// Key is a composite cache key: an op plus its parameters.
type Key struct {
	Op     QueryOp
	Params map[string]interface{}
}

// NewKey builds a key from alternating name/value pairs.
func NewKey(op QueryOp, kv ...interface{}) Key {
	params := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return Key{Op: op, Params: params}
}

// String renders the key with parameters sorted by name, so equal keys always
// produce the same Redis key.
func (k Key) String() string {
	names := make([]string, 0, len(k.Params))
	for name := range k.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names)+2)
	parts = append(parts, Namespace, string(k.Op))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, k.Params[name]))
	}
	return strings.Join(parts, ":")
}

// Base is the key of op without parameters.
func Base(op QueryOp) string {
	return Namespace + ":" + string(op)
}

// Pattern matches every parameterised key stored for op. The parameterless key
// is Base(op); invalidation has to remove both.
func Pattern(op QueryOp) string {
	return Base(op) + ":*"
}

// GenerationKey holds the invalidation counter of op. It lives outside Namespace
// so that invalidating or flushing op never removes it.
func GenerationKey(op QueryOp) string {
	return Namespace + "-gen:" + string(op)
}

// OpOf extracts the op segment from a rendered key.
func OpOf(key string) QueryOp {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) < 2 || parts[0] != Namespace {
		return ""
	}
	return QueryOp(parts[1])
}
