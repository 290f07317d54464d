// Package query translates tagged filter conditions and page requests into
// MongoDB queries. List endpoints across every resource share this layer.
package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Condition is one filter clause. Each implementation maps to a single Mongo
// operator; handlers build conditions from a fixed per-resource field set and
// never pass raw operator documents around.
type Condition interface {
	apply(filter bson.M)
}

// Eq matches documents whose field equals the value exactly.
type Eq struct {
	Field string
	Value interface{}
}

func (c Eq) apply(filter bson.M) {
	filter[c.Field] = c.Value
}

// Contains matches documents whose string field contains the value as a
// literal substring, case-insensitively. The value is escaped so regex
// metacharacters in user input cannot alter or break the query.
type Contains struct {
	Field string
	Value string
}

func (c Contains) apply(filter bson.M) {
	filter[c.Field] = primitive.Regex{Pattern: regexp.QuoteMeta(c.Value), Options: "i"}
}

// In matches documents whose field equals any of the values.
type In struct {
	Field  string
	Values []interface{}
}

func (c In) apply(filter bson.M) {
	filter[c.Field] = bson.M{"$in": c.Values}
}

// Range matches documents whose field lies in [Min, Max]. Either bound may be
// nil to leave that side open.
type Range struct {
	Field string
	Min   interface{}
	Max   interface{}
}

func (c Range) apply(filter bson.M) {
	bounds := bson.M{}
	if c.Min != nil {
		bounds["$gte"] = c.Min
	}
	if c.Max != nil {
		bounds["$lte"] = c.Max
	}
	filter[c.Field] = bounds
}

// AnyContains matches documents where at least one of the fields contains the
// value as a literal substring, case-insensitively. Used for free-text search
// across a resource's searchable fields.
type AnyContains struct {
	Fields []string
	Value  string
}

func (c AnyContains) apply(filter bson.M) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(c.Value), Options: "i"}
	clauses := make([]bson.M, 0, len(c.Fields))
	for _, f := range c.Fields {
		clauses = append(clauses, bson.M{f: pattern})
	}
	filter["$or"] = clauses
}

// Build translates conditions into a single Mongo filter document. No
// conditions yields the match-everything filter.
func Build(conds ...Condition) bson.M {
	filter := bson.M{}
	for _, c := range conds {
		c.apply(filter)
	}
	return filter
}
