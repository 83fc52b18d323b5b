package helper

import (
	"log"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper maps service errors to HTTP responses and validates request
// structs with translated field messages.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		log.Println("Failed to register validator translations:", err)
	}

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode resolves the HTTP status for a service error. Unrecognized
// errors are treated as internal.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch u.getTypeData(err) {
	case "models.ErrorValidation":
		return http.StatusBadRequest
	case "models.ErrorUnauthorized":
		return http.StatusUnauthorized
	case "models.ErrorNotFound":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// SendError answers with the status for err. Internal errors are logged with
// detail; the client only sees a generic message.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	statusCode := u.GetStatusCode(err)
	if statusCode == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(statusCode, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(statusCode, gin.H{"error": err.Error()})
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// ValidateStruct runs the struct through the validator and, on failure, sends
// a bad request with per-field translated messages. Returns true when valid.
func (u *HTTPHelper) ValidateStruct(c *gin.Context, value interface{}) bool {
	err := u.Validate.Struct(value)
	if err == nil {
		return true
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		u.SendBadRequest(c, err.Error())
		return false
	}

	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, fieldErr := range validationErrors {
		errKey := Underscore(fieldErr.Field())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[fieldErr.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation failed",
		"details": errorResponse,
	})
	return false
}
