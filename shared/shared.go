package shared

import (
	"concierge/shared/cache"
	"concierge/shared/constant"
	"concierge/shared/dto"
	"concierge/shared/timezone"
	"context"
	"reflect"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// TransformFields converts the non-zero `db` tagged fields of a struct into an update map
// and stamps the modification columns.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByTenant scopes a lookup to a single hotel. An empty id matches every row of the hotel.
func FilterByTenant(hotelID, fieldHotelID, id, fieldID, table string) dto.FilterGroup {
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldHotelID,
				Value:    hotelID,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}

	if id != "" {
		filter.Filters = append(filter.Filters, dto.Filter{
			Field:    fieldID,
			Value:    id,
			Operator: dto.FilterOperatorEq,
			Table:    table,
		})
	}

	return filter
}

func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + cacheKeySeparator + strings.Join(parts, cacheKeySeparator)
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
