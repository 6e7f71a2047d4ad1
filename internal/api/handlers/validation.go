package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// init registers the daterange tag with Gin's underlying validator engine:
// a string field value must parse as YYYY-MM-DD. The request-to-engine
// conversion (dto.go's parseDate) still parses the dates afterwards, since a binding tag only
// rejects malformed requests early — it carries no date semantics of its
// own.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("daterange", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	})
}
