// Package response writes the storefront's raw result shapes. There is no
// envelope: store results and records go out verbatim, failures are an
// {error: "..."} object. Expected business conditions (duplicate email,
// zero-count deletes) keep status 200 for compatibility with the deployed
// frontend; everything else gets a real status code.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Send(c *gin.Context, v any) { c.JSON(http.StatusOK, v) }

// BusinessError 业务预期内的失败：契约要求 200 + error 字段
func BusinessError(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"error": msg})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func Internal(c *gin.Context, err error) {
	_ = c.Error(err) // AccessLog 会带出错误栈
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
