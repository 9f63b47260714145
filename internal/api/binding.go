package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type cardListQuery struct {
	Page               int  `form:"page,default=1" binding:"min=1"`
	PerPage            *int `form:"per_page" binding:"omitempty,min=1,max=100"`
	IncludeAlternative bool `form:"include_alternative,default=true"`
}

type searchQuery struct {
	NamePart string `form:"name_part" binding:"required,min=2"`
}

type cardNumberURI struct {
	CardNumber string `uri:"card_number" binding:"required"`
}

type referenceURI struct {
	Table string `uri:"table" binding:"required"`
	ID    int64  `uri:"id"`
}

type collectionListQuery struct {
	Page               int  `form:"page,default=1" binding:"min=1"`
	PerPage            int  `form:"per_page,default=25" binding:"min=1,max=100"`
	IncludeAlternative bool `form:"include_alternative,default=true"`
}

type addCardQuery struct {
	CardNumber string `form:"card_number" binding:"required"`
	Quantity   int    `form:"quantity,default=1" binding:"min=1,max=9999"`
}

type updateQuantityQuery struct {
	Quantity *int `form:"quantity" binding:"required,max=9999"`
}

type createDeckQuery struct {
	Name    string  `form:"name" binding:"required,max=255"`
	ColorID *int64  `form:"color_id" binding:"omitempty,min=1"`
	Image   *string `form:"image" binding:"omitempty,max=512"`
}

type deckURI struct {
	DeckID int64 `uri:"deck_id" binding:"min=1"`
}

type deckCardURI struct {
	DeckID     int64  `uri:"deck_id" binding:"min=1"`
	CardNumber string `uri:"card_number" binding:"required"`
}

var tagNamesOnce sync.Once

// registerTagNames makes validation errors name the query or path
// parameter instead of the Go field.
func registerTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, key := range []string{"form", "uri"} {
				if name, _, _ := strings.Cut(f.Tag.Get(key), ","); name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	})
}

// bindQuery binds and validates the query string, answering 422 on
// failure. It reports whether the handler should continue.
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		writeDetail(c, http.StatusUnprocessableEntity, validationDetail(err))
		return false
	}
	return true
}

func bindURI(c *gin.Context, dst any) bool {
	if err := c.ShouldBindUri(dst); err != nil {
		writeDetail(c, http.StatusUnprocessableEntity, validationDetail(err))
		return false
	}
	return true
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request parameters: " + err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		if unit != "" {
			return fmt.Sprintf("%s must be at least %s%s", fe.Field(), fe.Param(), unit)
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "max":
		if unit != "" {
			return fmt.Sprintf("%s must be at most %s%s", fe.Field(), fe.Param(), unit)
		}
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	}
	return fe.Field() + " is invalid"
}
