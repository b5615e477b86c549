package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/asanchezr/gin-menu-api/internal/models"
	"github.com/gin-gonic/gin"
)

// MenuItemKey is the gin context key under which the validated and
// normalized payload is stored for the downstream handler.
const MenuItemKey = "menuItem"

// menuItemRule inspects one field of the decoded request body and returns a
// failure message, or "" when the field passes.
type menuItemRule func(body map[string]any) string

// menuItemRules is the full rule table for create/update payloads. Every rule
// runs and every failing message is collected before responding, so a single
// bad request reports all of its problems at once.
var menuItemRules = []menuItemRule{
	func(body map[string]any) string {
		name, ok := body["name"].(string)
		if !ok {
			return "Name must be a string"
		}
		if len(name) < 3 {
			return "Name must be at least 3 characters"
		}
		return ""
	},
	func(body map[string]any) string {
		description, ok := body["description"].(string)
		if !ok {
			return "Description must be a string"
		}
		if len(description) < 10 {
			return "Description must be at least 10 characters"
		}
		return ""
	},
	func(body map[string]any) string {
		price, ok := body["price"].(float64)
		if !ok || price <= 0 {
			return "Price must be a number greater than 0"
		}
		return ""
	},
	func(body map[string]any) string {
		category, ok := body["category"].(string)
		if !ok {
			return "Category must be a string"
		}
		if !models.IsValidCategory(category) {
			return "Category must be one of: " + strings.Join(models.Categories, ", ")
		}
		return ""
	},
	func(body map[string]any) string {
		ingredients, ok := body["ingredients"].([]any)
		if !ok || len(ingredients) < 1 {
			return "Ingredients must be an array with at least 1 item"
		}
		return ""
	},
	func(body map[string]any) string {
		available, present := body["available"]
		if !present {
			return ""
		}
		if _, ok := available.(bool); !ok {
			return "Available must be true or false"
		}
		return ""
	},
}

// ValidateMenuItem gates create/update requests. On any rule failure it
// responds 400 with every collected message and never reaches the handler.
// On success it defaults a missing "available" to true, builds the typed
// MenuItem and stores it in the context for the handler to pick up.
func ValidateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil || body == nil {
			// A missing or malformed body fails every field rule
			body = map[string]any{}
		}

		var messages []string
		for _, rule := range menuItemRules {
			if msg := rule(body); msg != "" {
				messages = append(messages, msg)
			}
		}
		if len(messages) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.NewValidationErrorResponse(messages))
			return
		}

		if _, present := body["available"]; !present {
			body["available"] = true
		}

		c.Set(MenuItemKey, buildMenuItem(body))
		c.Next()
	}
}

// buildMenuItem assembles the typed payload from a body that already passed
// every rule, so the type assertions here cannot fail.
func buildMenuItem(body map[string]any) models.MenuItem {
	raw := body["ingredients"].([]any)
	ingredients := make([]string, 0, len(raw))
	for _, ingredient := range raw {
		if s, ok := ingredient.(string); ok {
			ingredients = append(ingredients, s)
		} else {
			ingredients = append(ingredients, fmt.Sprint(ingredient))
		}
	}

	return models.MenuItem{
		Name:        body["name"].(string),
		Description: body["description"].(string),
		Price:       body["price"].(float64),
		Category:    body["category"].(string),
		Ingredients: ingredients,
		Available:   body["available"].(bool),
	}
}
