package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// BindJSON binds the request body into out. A malformed body or a wrong
// structural shape (e.g. a non-array where line items are expected) writes a
// 400 and returns an error for the handler to short-circuit. Semantic field
// validation is not done here; that belongs to the per-kind validators,
// which accumulate violations instead of failing on the first.
func BindJSON(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid_request_body",
			"msg":   err.Error(),
		})
		return err
	}
	return nil
}

// New returns a configured validator for structural shape checks (worker
// messages, rule tables). Request semantics never go through it.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// ErrorsToMap flattens validator errors into a field->message map.
func ErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.StructNamespace()] = fe.Error()
		}
	} else if err != nil {
		out["error"] = err.Error()
	}
	return out
}
