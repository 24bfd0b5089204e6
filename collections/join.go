package collections

import (
	"fmt"
	"strings"
)

type joinConfig struct {
	separator string
	prefix    string
	postfix   string
	limit     int
	truncated string
}

// JoinOption configures [Enumerable.Join] and [Enumerable.JoinFunc].
type JoinOption func(*joinConfig)

// WithSeparator sets the string placed between elements. Default ", ".
func WithSeparator(sep string) JoinOption {
	return func(c *joinConfig) { c.separator = sep }
}

// WithPrefix sets the string placed before the first element.
func WithPrefix(prefix string) JoinOption {
	return func(c *joinConfig) { c.prefix = prefix }
}

// WithPostfix sets the string placed after the last element.
func WithPostfix(postfix string) JoinOption {
	return func(c *joinConfig) { c.postfix = postfix }
}

// WithLimit renders at most n elements and then the truncation marker.
// It panics with an ErrInvalidArgument error when n is negative.
func WithLimit(n int) JoinOption {
	ensureNonNegative("limit", n)
	return func(c *joinConfig) { c.limit = n }
}

// WithTruncated sets the marker written when the limit cuts the output
// short. Default "...".
func WithTruncated(marker string) JoinOption {
	return func(c *joinConfig) { c.truncated = marker }
}

// Join renders the elements with fmt.Sprint.
//
//	collections.Of(1, 2, 3).Join()                          // "1, 2, 3"
//	collections.Of(1, 2, 3).Join(collections.WithLimit(2))  // "1, 2, ..."
func (e enumerable[T]) Join(opts ...JoinOption) string {
	return e.JoinFunc(func(item T) string { return fmt.Sprint(item) }, opts...)
}

// JoinFunc renders the elements with fn.
func (e enumerable[T]) JoinFunc(fn func(T) string, opts ...JoinOption) string {
	cfg := joinConfig{separator: ", ", limit: -1, truncated: "..."}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	b.WriteString(cfg.prefix)
	count := 0
	for item := range e.src.Values() {
		count++
		if count > 1 {
			b.WriteString(cfg.separator)
		}
		if cfg.limit >= 0 && count > cfg.limit {
			b.WriteString(cfg.truncated)
			break
		}
		b.WriteString(fn(item))
	}
	b.WriteString(cfg.postfix)
	return b.String()
}
