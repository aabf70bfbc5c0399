// Package validator holds the request-field checks and escaping rules shared
// by the web handlers and the seed command. All checks are pure functions of
// their input; the caller decides how to surface the error list.
package validator

import (
	"fmt"
	"html"
	"math"
	"net/mail"
	"regexp"
	"strings"
)

var Categories = []string{"kirana", "snacks", "beverages", "toiletries", "household", "dairy", "general"}

// Indian mobile numbers: optional +91 or leading 0, then ten digits.
var phonePattern = regexp.MustCompile(`^(\+91|0)?[0-9]{10}$`)

// Escape trims surrounding whitespace and HTML-escapes the value. Handlers
// apply it when binding every user-supplied string field.
func Escape(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

type ShopInput struct {
	Name     string
	City     string
	Address  string
	Phone    string
	Whatsapp string
	Email    string
}

func ValidateShop(in ShopInput) []string {
	var errs []string

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, "Shop name must be at least 2 characters long")
	}
	if len(in.Name) > 100 {
		errs = append(errs, "Shop name cannot exceed 100 characters")
	}

	if len(strings.TrimSpace(in.City)) < 2 {
		errs = append(errs, "City name is required and must be at least 2 characters")
	}

	if len(strings.TrimSpace(in.Address)) < 10 {
		errs = append(errs, "Address must be at least 10 characters long")
	}
	if len(in.Address) > 200 {
		errs = append(errs, "Address cannot exceed 200 characters")
	}

	if in.Phone == "" {
		errs = append(errs, "Phone number is required")
	} else if !phonePattern.MatchString(in.Phone) {
		errs = append(errs, "Please provide a valid Indian phone number")
	}

	if in.Whatsapp != "" && !phonePattern.MatchString(in.Whatsapp) {
		errs = append(errs, "Please provide a valid WhatsApp number")
	}

	if in.Email != "" && !validEmail(in.Email) {
		errs = append(errs, "Please provide a valid email address")
	}

	return errs
}

type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
}

func ValidateProduct(in ProductInput) []string {
	var errs []string

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, "Product name must be at least 2 characters long")
	}
	if len(in.Name) > 100 {
		errs = append(errs, "Product name cannot exceed 100 characters")
	}

	if len(in.Description) > 500 {
		errs = append(errs, "Description cannot exceed 500 characters")
	}

	if !ValidCategory(in.Category) {
		errs = append(errs, fmt.Sprintf("Category must be one of: %s", strings.Join(Categories, ", ")))
	}

	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) || in.Price < 0 {
		errs = append(errs, "Price must be a valid positive number")
	}
	if in.Price > 100000 {
		errs = append(errs, "Price cannot exceed ₹1,00,000")
	}

	return errs
}

type SearchInput struct {
	Query    string
	City     string
	Category string
}

func ValidateSearch(in SearchInput) []string {
	var errs []string

	if len(in.Query) > 100 {
		errs = append(errs, "Search query cannot exceed 100 characters")
	}
	if len(in.City) > 50 {
		errs = append(errs, "City name cannot exceed 50 characters")
	}
	if in.Category != "" && !ValidCategory(in.Category) {
		errs = append(errs, fmt.Sprintf("Category must be one of: %s", strings.Join(Categories, ", ")))
	}

	return errs
}
