// Package ensuregin runs ensure's presence checks during gin request binding.
package ensuregin

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/banglin/go-ensure/ensure"
	"github.com/banglin/go-ensure/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// RegisterValidation installs the nonempty tag on gin's default binding
// validator, so request structs can use `binding:"nonempty"`.
func RegisterValidation() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin binding engine is %T, not *validator.Validate", binding.Validator.Engine())
	}
	return ensure.RegisterValidation(v)
}

// BindJSON decodes the request body into obj and runs the binding tags.
// Presence failures come back as *ensure.Error values.
func BindJSON(c *gin.Context, obj any) error {
	return ensure.Translate(c.ShouldBindJSON(obj))
}

// Abort stops the chain with 400 and a {"error": "..."} body.
func Abort(c *gin.Context, err error) {
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	}
	if failures := ensure.Errors(err); len(failures) > 0 {
		fields = append(fields, zap.Int("presence_failures", len(failures)))
	}
	logger.Named("ensure.gin").Debug("request rejected", fields...)

	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message(err)})
}

// message reports only the first failure so the response stays a single
// readable string.
func message(err error) string {
	if failures := ensure.Errors(err); len(failures) > 0 {
		return failures[0].Error()
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("%s: failed %q validation", verrs[0].Field(), verrs[0].Tag())
	}
	return err.Error()
}
