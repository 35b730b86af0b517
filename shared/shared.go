package shared

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// BuildCacheKey joins a prefix and its parts with the cache key separator, skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	key := prefix

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key += cacheKeySeparator + part
	}

	return key
}

// RoundMoney rounds to two decimals so summed line totals compare exactly.
func RoundMoney(amount float64) float64 {
	if amount < 0 {
		return -RoundMoney(-amount)
	}

	return float64(int64(amount*100+0.5)) / 100
}
