package query

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		conds []Condition
		want  bson.M
	}{
		{
			"no conditions matches everything",
			nil,
			bson.M{},
		},
		{
			"equality",
			[]Condition{Eq{Field: "status", Value: 1}},
			bson.M{"status": 1},
		},
		{
			"case-insensitive contains",
			[]Condition{Contains{Field: "name", Value: "fra"}},
			bson.M{"name": primitive.Regex{Pattern: "fra", Options: "i"}},
		},
		{
			"contains escapes regex metacharacters",
			[]Condition{Contains{Field: "name", Value: "a(b"}},
			bson.M{"name": primitive.Regex{Pattern: `a\(b`, Options: "i"}},
		},
		{
			"contains treats wildcards literally",
			[]Condition{Contains{Field: "name", Value: ".*"}},
			bson.M{"name": primitive.Regex{Pattern: `\.\*`, Options: "i"}},
		},
		{
			"search escapes regex metacharacters",
			[]Condition{AnyContains{Fields: []string{"subject"}, Value: "50% off?"}},
			bson.M{"$or": []bson.M{
				{"subject": primitive.Regex{Pattern: `50% off\?`, Options: "i"}},
			}},
		},
		{
			"membership",
			[]Condition{In{Field: "kind", Values: []interface{}{"true_false", "matching"}}},
			bson.M{"kind": bson.M{"$in": []interface{}{"true_false", "matching"}}},
		},
		{
			"closed range",
			[]Condition{Range{Field: "rating", Min: 2, Max: 4}},
			bson.M{"rating": bson.M{"$gte": 2, "$lte": 4}},
		},
		{
			"half-open range",
			[]Condition{Range{Field: "rating", Min: 3}},
			bson.M{"rating": bson.M{"$gte": 3}},
		},
		{
			"search across fields",
			[]Condition{AnyContains{Fields: []string{"first_name", "email"}, Value: "kim"}},
			bson.M{"$or": []bson.M{
				{"first_name": primitive.Regex{Pattern: "kim", Options: "i"}},
				{"email": primitive.Regex{Pattern: "kim", Options: "i"}},
			}},
		},
		{
			"conditions compose into one document",
			[]Condition{
				Eq{Field: "status", Value: 1},
				Contains{Field: "name", Value: "geo"},
			},
			bson.M{
				"status": 1,
				"name":   primitive.Regex{Pattern: "geo", Options: "i"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.conds...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Build() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
