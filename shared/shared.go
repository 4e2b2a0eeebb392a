package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"hotelhills/shared/cache"
	"hotelhills/shared/constant"
	"hotelhills/shared/dto"
	"hotelhills/shared/timezone"

	"github.com/rs/zerolog/log"
)

// CalculateTotalPage never reports fewer than one page, so an empty list still has page 1.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// TransformFields turns the set fields of an update struct into a column map and stamps modified_at.
// Zero values are skipped, so a nil pointer leaves its column untouched while a pointer to a
// zero value still writes it. Fields without a db tag or tagged db:"-" are ignored.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		column := typ.Field(index).Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}

		updatedFields[column] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()

	return updatedFields
}

// FilterByID selects a single row by its key column.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	group := dto.NewFilterGroup()
	group.Filters = append(group.Filters, dto.Filter{
		Field:    fieldID,
		Value:    id,
		Operator: dto.FilterOperatorEq,
		Table:    table,
	})

	return group
}

// BuildCacheKey joins the prefix and parts with the cache separator.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), constant.Separator)
}

// BuildCacheKeyWithQuery derives a stable key from the pagination params and the filter arguments.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	var builder strings.Builder

	fmt.Fprintf(&builder, "%d|%d|%s|%s|%s", params.Page, params.Limit, params.SortBy, params.SortDir, where)

	for _, key := range keys {
		fmt.Fprintf(&builder, "|%s=%v", key, args[key])
	}

	sum := sha256.Sum256([]byte(builder.String()))

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key under the prefix. Failures are only logged.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
