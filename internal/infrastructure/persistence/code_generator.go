package persistence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// nextSequentialCode generates the next business code in the form
// <TAG>-<YYYY>-<NNNNN>, e.g. SI-2026-00042. The sequence restarts each year
// and continues from the highest existing code sharing the prefix.
func nextSequentialCode(ctx context.Context, db *gorm.DB, model interface{}, tag string) (string, error) {
	prefix := fmt.Sprintf("%s-%d-", tag, time.Now().Year())

	var last string
	err := db.WithContext(ctx).
		Model(model).
		Select("code").
		Where("code LIKE ?", prefix+"%").
		Order("code DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	var next int64 = 1
	if last != "" {
		parts := strings.Split(last, "-")
		if len(parts) == 3 {
			if num, perr := strconv.ParseInt(parts[2], 10, 64); perr == nil {
				next = num + 1
			}
		}
	}

	return fmt.Sprintf("%s%05d", prefix, next), nil
}
