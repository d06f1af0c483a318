package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID 读取路径参数 id 并解析为数字主键。
// 非法输入返回 0，后续查库会按记录不存在处理
func ParamID(c *gin.Context) uint {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}
