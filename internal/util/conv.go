package util

import (
	"strconv"
	"time"
)

// ParseLimit 解析分页条数，非法或越界时返回默认值
func ParseLimit(s string, def, max int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// DayOf 返回 t 在 UTC 下的自然日，日志按此字段去重
func DayOf(t time.Time) string {
	return t.UTC().Format(DateFormat)
}
