// Package alliance implements the wire-format codec for the Alliance
// supplier: encoding canonical requests into the supplier's positional
// query-string dialect and decoding its positionally-indexed array responses
// back into canonical entities.
package alliance

import (
	"net/url"
	"strings"
)

// Params is an ordered key/value multimap for building supplier query
// strings. Duplicate keys are legal on the wire and must be preserved in
// insertion order, which url.Values cannot do (its Encode sorts keys).
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

// NewParams creates an empty parameter list.
func NewParams() *Params {
	return &Params{}
}

// Add appends a key/value pair, preserving insertion order.
func (p *Params) Add(key, value string) {
	p.pairs = append(p.pairs, pair{key: key, value: value})
}

// Set replaces the first occurrence of key, or appends if absent.
func (p *Params) Set(key, value string) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value
			return
		}
	}
	p.Add(key, value)
}

// Get returns the first value for key, or "".
func (p *Params) Get(key string) string {
	for _, kv := range p.pairs {
		if kv.key == key {
			return kv.value
		}
	}
	return ""
}

// Values returns all values recorded for key, in insertion order.
func (p *Params) Values(key string) []string {
	var out []string
	for _, kv := range p.pairs {
		if kv.key == key {
			out = append(out, kv.value)
		}
	}
	return out
}

// Len returns the number of pairs.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Encode renders the query string with percent-escaping, keys in insertion
// order.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}
