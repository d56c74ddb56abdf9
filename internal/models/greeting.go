// Package models contains the data payloads exchanged by the greeting service.
package models

// Greeting is the JSON payload used for both greeting requests and responses.
// Name and Age are pointers so an absent field can be told apart from its zero
// value. The binding tags only take effect when a handler binds a request into
// a Greeting; an outbound Greeting carries just a message.
type Greeting struct {
	Message string  `json:"message,omitempty" form:"-"`
	Name    *string `json:"name,omitempty" form:"name" binding:"required"`
	Age     *int    `json:"age,omitempty" form:"age" binding:"required"`
}

// NewGreeting creates an outbound greeting holding only a message
func NewGreeting(message string) *Greeting {
	return &Greeting{Message: message}
}
