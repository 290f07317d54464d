package query

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// MaxPageSize caps every page request; larger sizes are clamped, not rejected.
	MaxPageSize = 100
	// DefaultPageSize applies when the client supplies no page size.
	DefaultPageSize = 10

	// SortAsc and SortDesc are the only accepted sort orders.
	SortAsc  = 1
	SortDesc = -1
)

// defaultSortKey orders results by creation time unless a resource overrides it.
const defaultSortKey = "created_at"

// Page is a validated page request.
type Page struct {
	Number    int64
	Size      int64
	SortOrder int
	SortKey   string
}

// NewPage normalizes raw paging inputs: page numbers below 1 become 1, sizes
// are defaulted and clamped to MaxPageSize, and any sort order other than
// SortAsc collapses to SortDesc.
func NewPage(number, size int64, sortOrder int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if sortOrder != SortAsc {
		sortOrder = SortDesc
	}
	return Page{Number: number, Size: size, SortOrder: sortOrder, SortKey: defaultSortKey}
}

// Skip returns the number of documents preceding the page window.
func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Size
}

// TotalPages derives the page count for a given total match count.
func (p Page) TotalPages(totalCount int64) int64 {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + p.Size - 1) / p.Size
}

// FindPage runs the filtered query twice: once for the page window
// (skip/limit/sort) and once for the total match count, ignoring the window.
// A skip beyond the last match yields an empty slice with the true count.
func FindPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, page Page) ([]T, int64, error) {
	findOpts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(page.Size).
		SetSort(bson.D{{Key: page.SortKey, Value: page.SortOrder}})

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0, page.Size)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	totalCount, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, totalCount, nil
}

// FindOne decodes the first document matching filter into result.
func FindOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, result *T) error {
	return coll.FindOne(ctx, filter).Decode(result)
}

// Exists reports whether any document matches filter.
func Exists(ctx context.Context, coll *mongo.Collection, filter bson.M) (bool, error) {
	count, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
