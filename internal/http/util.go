package httpapi

import (
	"fmt"
	"strconv"
	"strings"

	"inhaler-monitor/internal/service"
)

// parseUserID 从路径中解析 user_id（prefix 之后的单段路径）
func parseUserID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if idStr == "" || strings.Contains(idStr, "/") {
		return 0, fmt.Errorf("%w: user id is required in path", service.ErrValidation)
	}
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: invalid user id %q", service.ErrValidation, idStr)
	}
	return userID, nil
}
