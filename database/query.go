package database

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmorales-dev/portfolio-backend/models"
)

// Sort keywords accepted by the listing endpoint.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortFeatured = "featured"
	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"
)

// ProjectQuery holds the normalized filter dimensions for a project listing.
// Every field is optional; a zero-value field contributes no constraint.
// Name-based inputs must already be resolved to ids before a query is built.
type ProjectQuery struct {
	// CategoryIDs matches projects whose category is any of the ids.
	CategoryIDs []primitive.ObjectID
	// TechnologyIDs matches projects whose technology set contains all of the ids.
	TechnologyIDs []primitive.ObjectID
	// Years matches projects created in any of the given UTC calendar years.
	Years []int
	// Featured, when non-nil, matches projects with that featured value.
	Featured *bool
}

// BuildFilter composes the present dimensions into a single predicate.
// Dimensions combine by AND; categories use OR within their dimension ($in)
// while technologies require every requested id to be present ($all).
func (q ProjectQuery) BuildFilter() bson.M {
	filter := bson.M{}
	if len(q.CategoryIDs) > 0 {
		filter["category"] = bson.M{"$in": q.CategoryIDs}
	}
	if len(q.TechnologyIDs) > 0 {
		filter["technologies"] = bson.M{"$all": q.TechnologyIDs}
	}
	switch len(q.Years) {
	case 0:
	case 1:
		filter["createdAt"] = yearRange(q.Years[0])
	default:
		ranges := make([]bson.M, 0, len(q.Years))
		for _, year := range q.Years {
			ranges = append(ranges, bson.M{"createdAt": yearRange(year)})
		}
		filter["$or"] = ranges
	}
	if q.Featured != nil {
		filter["featured"] = *q.Featured
	}
	return filter
}

// yearRange matches timestamps in [Jan 1 year, Jan 1 year+1) UTC.
func yearRange(year int) bson.M {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return bson.M{"$gte": start, "$lt": start.AddDate(1, 0, 0)}
}

// ResolveSort maps a sort keyword to a Mongo ordering. Name sorts key off the
// requested locale's title field; an unknown or empty keyword falls back to
// newest-first.
func ResolveSort(keyword, locale string) bson.D {
	if locale == "" {
		locale = models.DefaultLocale
	}
	switch keyword {
	case SortOldest:
		return bson.D{{Key: "createdAt", Value: 1}}
	case SortFeatured:
		return bson.D{{Key: "featured", Value: -1}, {Key: "createdAt", Value: -1}}
	case SortNameAsc:
		return bson.D{{Key: "title." + locale, Value: 1}}
	case SortNameDesc:
		return bson.D{{Key: "title." + locale, Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

const (
	DefaultPage  = 1
	DefaultLimit = 6
	MaxLimit     = 50
)

// Pagination is a 1-based page window over a result set.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination clamps page and limit to usable values. Zero or negative
// inputs fall back to the defaults; limit is capped at MaxLimit.
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// Skip returns the number of documents preceding the requested page.
func (p Pagination) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Pages returns the total page count for total matching documents.
func (p Pagination) Pages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(p.Limit)))
}
