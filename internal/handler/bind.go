package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var tagNamesOnce sync.Once

// useWireNames makes validation errors name fields by their json or form
// key instead of the Go field name.
func useWireNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

func bindJSON(c *gin.Context, dst any) error {
	useWireNames()
	return c.ShouldBindJSON(dst)
}

func bindQuery(c *gin.Context, dst any) error {
	useWireNames()
	return c.ShouldBindQuery(dst)
}

// describeBindError turns a binding failure into a client-facing message
func describeBindError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describeField(fe))
		}
		return strings.Join(msgs, "; ")
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("%q is not a valid number", numErr.Num)
	}
	if errors.Is(err, strconv.ErrSyntax) || errors.Is(err, strconv.ErrRange) {
		return "invalid number"
	}
	return err.Error()
}

func describeField(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "url":
		return name + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	}
	return fmt.Sprintf("%s failed %q validation", name, fe.Tag())
}
