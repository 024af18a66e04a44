package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParamUUID parses the route parameter name as a UUID.
func ParamUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q: %w", name, c.Param(name), err)
	}
	return id, nil
}

// FormUUID parses the posted form field name as a UUID.
func FormUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.PostForm(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q: %w", name, c.PostForm(name), err)
	}
	return id, nil
}
