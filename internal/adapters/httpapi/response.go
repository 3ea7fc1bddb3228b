package httpapi

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bootcamp/internal/domain"
	"bootcamp/internal/ports/output"
)

// Localizer is the translator plus Accept-Language negotiation.
type Localizer interface {
	output.Translator
	Negotiate(acceptLanguage string) string
}

const localeKey = "locale"

func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindDuplicateKey, domain.KindConflict:
		return http.StatusConflict
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// failure logs storage errors and returns the HTTP status and localized
// Result for err. Storage details never reach the client.
func failure(c *gin.Context, tr output.Translator, err error) (int, Result) {
	status := statusFor(err)
	key := "errors.generic"
	if code := domain.Code(err); code != "" {
		key = "errors." + code
	}
	if status == http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		key = "errors.storage"
	}
	msg := tr.T(c.GetString(localeKey), key, map[string]any{"Detail": domain.DetailOf(err)})
	return status, Result{Success: false, ErrMsg: msg}
}

func ok() Result {
	return Result{Success: true}
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid(name + " must be a positive integer")
	}
	return id, nil
}

func bindJSON(c *gin.Context, target any) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return domain.Invalid("malformed JSON body")
	}
	return nil
}
