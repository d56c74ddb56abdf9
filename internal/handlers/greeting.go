// Package handlers contains HTTP request handlers for the greeting service.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/sebasr/greeting-service/internal/models"
)

// MissingFieldMessage is returned when name or age is absent from a request
const MissingFieldMessage = "Name or age can't be null"

const (
	invalidAgeMessage     = "Invalid request: age must be an integer"
	malformedBodyMessage  = "Invalid request: malformed JSON body"
	invalidFieldMsgFormat = "Invalid request: %s has the wrong type"
)

// PathGreetingHandler greets the name taken from the URL path
// GET /greet/:name
func PathGreetingHandler(c *gin.Context) {
	name := c.Param("name")
	// A matched route always carries a segment, so this only guards direct calls.
	if name == "" {
		c.JSON(http.StatusBadRequest, models.NewGreeting(MissingFieldMessage))
		return
	}

	c.JSON(http.StatusOK, models.NewGreeting("Hello "+name+"!"))
}

// QueryGreetingHandler greets using the name and age query parameters
// GET /greet?name=&age=
func QueryGreetingHandler(c *gin.Context) {
	// The form binder reads an empty integer as 0, so an empty age counts as absent
	if age, ok := c.GetQuery("age"); ok && age == "" {
		c.JSON(http.StatusBadRequest, models.NewGreeting(MissingFieldMessage))
		return
	}

	var req models.Greeting
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err, invalidAgeMessage)
		return
	}

	c.JSON(http.StatusOK, models.NewGreeting(introduction(*req.Name, *req.Age)))
}

// BodyGreetingHandler greets using the name and age of a JSON request body
// POST /greet
func BodyGreetingHandler(c *gin.Context) {
	var req models.Greeting
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, bodyErrorMessage(err))
		return
	}

	c.JSON(http.StatusOK, models.NewGreeting(introduction(*req.Name, *req.Age)))
}

// respondBindError maps a binding failure to a 400 response. Failed required
// checks and an empty body both mean a field is missing; anything else is
// input the binder could not parse and gets invalidMsg.
func respondBindError(c *gin.Context, err error, invalidMsg string) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) || errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.NewGreeting(MissingFieldMessage))
		return
	}

	c.JSON(http.StatusBadRequest, models.NewGreeting(invalidMsg))
}

// bodyErrorMessage names the offending field without exposing decoder details
func bodyErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf(invalidFieldMsgFormat, typeErr.Field)
	}
	return malformedBodyMessage
}

func introduction(name string, age int) string {
	return fmt.Sprintf("Hello my name is: %s and my age is: %d old!!", name, age)
}
